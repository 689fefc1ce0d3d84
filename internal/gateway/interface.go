package gateway

import "context"

// ModelGateway is the narrow model-provider contract the intelligence
// services depend on. Nothing above this layer knows which provider is
// behind it.
type ModelGateway interface {
	// Complete returns the text of a single completion.
	Complete(ctx context.Context, input CompleteInput) (string, error)

	// Classify picks one label from candidates for the given text.
	Classify(ctx context.Context, text string, labels []string, hint string) (string, error)

	// Embed returns one embedding vector per input text.
	Embed(ctx context.Context, texts []string, dimensions int) ([][]float32, error)
}
