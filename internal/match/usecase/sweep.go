package usecase

import (
	"context"

	"wishlist-matching/internal/match"
)

// SweepUnsent re-dispatches notifications for matched-but-unsent rows.
// Re-scanning is safe: Notify is a no-op for anything delivered in the
// meantime, and skipped sends leave the row for the next sweep.
func (uc *implUseCase) SweepUnsent(ctx context.Context) (match.SweepOutput, error) {
	unsent, err := uc.repo.ListUnsent(ctx, sweepBatchSize)
	if err != nil {
		uc.l.Errorf(ctx, "match.usecase.SweepUnsent: %v", err)
		return match.SweepOutput{}, err
	}

	out := match.SweepOutput{Scanned: len(unsent)}
	for _, m := range unsent {
		if err := uc.Notify(ctx, m.ID); err != nil {
			uc.l.Warnf(ctx, "match.usecase.SweepUnsent: match %s: %v", m.ID, err)
			continue
		}
		out.Sent++
	}
	return out, nil
}
