package voyage

import "context"

// IVoyage is the embedding capability consumed by the model gateway.
type IVoyage interface {
	Embed(ctx context.Context, texts []string, dimensions int) ([][]float32, error)
}
