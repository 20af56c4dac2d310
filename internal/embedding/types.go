package embedding

type GenerateInput struct {
	Text string
}

type GenerateOutput struct {
	Vector []float32
}
