package seeder

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Schedule repeats Run on the cron spec until ctx is cancelled.
// A run that is still going when the next tick fires causes that tick to be skipped,
// so runs never overlap. A failed run is logged and the schedule continues.
//
// Returns an error only if spec cannot be parsed.
func (s *Seeder) Schedule(ctx context.Context, spec string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(spec, func() {
		res, err := s.Run(ctx)
		if err != nil {
			log.Printf("Scheduled seeding run failed after %d drafts: %v", res.DraftsCreated, err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	log.Printf("Seeding on schedule %q", spec)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
