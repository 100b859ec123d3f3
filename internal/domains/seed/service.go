package seed

import "context"

type Service interface {
	// Seed inserts the fixture records. Running it again is a no-op for
	// records whose slug or question already exists.
	Seed(ctx context.Context) error
}
