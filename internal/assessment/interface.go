package assessment

import (
	"context"

	"support-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Start(ctx context.Context, input StartInput) (StartOutput, error)
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
	Pause(ctx context.Context, session *model.Session) error
	Resume(ctx context.Context, session *model.Session) (ResumeOutput, error)
	Exit(ctx context.Context, session *model.Session) error
}
