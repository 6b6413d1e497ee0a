package render

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"bwproxy/internal/models"
)

// CardError is the failure to draw one card of a batch.
type CardError struct {
	Name string
	Err  error
}

func (e *CardError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *CardError) Unwrap() error {
	return e.Err
}

// Result is the outcome for one card of a batch. Exactly one of Image and
// Err is set.
type Result struct {
	Card  models.Card
	Image *image.RGBA
	Err   *CardError
}

// DrawAll draws cards on up to workers goroutines (GOMAXPROCS if workers is
// not positive). A failing card does not stop the others. Results are in
// input order; cards not started before ctx is done fail with ctx's error.
// done, if not nil, is called after each card from the worker goroutine.
func (r *Renderer) DrawAll(ctx context.Context, cards []models.Card, opts Options, workers int, done func(Result)) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(cards))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, card := range cards {
		i, card := i, card
		results[i].Card = card
		if err := ctx.Err(); err != nil {
			results[i].Err = &CardError{Name: card.Name, Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = &CardError{Name: card.Name, Err: err}
				return nil
			}
			img, err := r.DrawCard(card, opts)
			if err != nil {
				results[i].Err = &CardError{Name: card.Name, Err: err}
			} else {
				results[i].Image = img
			}
			if done != nil {
				done(results[i])
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Images returns the images of the successful results, in order, and the
// errors of the failed ones.
func Images(results []Result) ([]image.Image, []*CardError) {
	var imgs []image.Image
	var errs []*CardError
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		imgs = append(imgs, res.Image)
	}
	return imgs, errs
}
