package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Astemirdum/circulation-service/circulation/config"
	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
)

// Random operation sequences never break the status derivation or the
// checkout/history pairing, and only domain errors surface.
func TestCirculationInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		policy := config.DefaultPolicy()
		policy.AllowDuplicateHolds = rapid.Bool().Draw(rt, "duplicates")
		policy.ReserveForHeadHold = rapid.Bool().Draw(rt, "reserve")
		policy.RejectBorrowerHolds = rapid.Bool().Draw(rt, "reject_borrower")
		f := newFixture(t, policy)
		ctx := context.Background()

		assets := []int64{assetX, assetY}
		cards := []int64{card1, card2, card3}
		now := t0

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			asset := rapid.SampledFrom(assets).Draw(rt, "asset")
			card := rapid.SampledFrom(cards).Draw(rt, "card")
			// equal timestamps exercise the insertion-order tie break
			now = now.Add(time.Duration(rapid.IntRange(0, 2).Draw(rt, "tick")) * time.Minute)

			var err error
			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				_, err = f.svc.CheckOut(ctx, asset, card, now)
			case 1:
				_, err = f.svc.CheckIn(ctx, asset, now)
			case 2:
				_, err = f.svc.PlaceHold(ctx, asset, card, now)
			case 3:
				_, err = f.svc.PromoteEarliestHold(ctx, asset, now)
			}
			if err != nil && !errors.Is(err, errs.ErrConflict) && !errors.Is(err, errs.ErrNotFound) {
				rt.Fatalf("step %d: unexpected error %v", i, err)
			}
			requireConsistent(rt, f.repo)
		}
	})
}

// A check-in always hands the asset to the card at the head of the queue.
func TestCheckInPromotesHead(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(t, config.DefaultPolicy())
		ctx := context.Background()

		_, err := f.svc.CheckOut(ctx, assetX, card1, t0)
		require.NoError(rt, err)

		queue := rapid.SliceOfNDistinct(rapid.SampledFrom([]int64{card2, card3}), 0, 2, rapid.ID[int64]).Draw(rt, "queue")
		for _, card := range queue {
			_, err := f.svc.PlaceHold(ctx, assetX, card, t0)
			require.NoError(rt, err)
		}

		res, err := f.svc.CheckIn(ctx, assetX, t0.Add(time.Hour))
		require.NoError(rt, err)
		require.Equal(rt, len(queue) > 0, res.PromotedHold)
		if len(queue) > 0 {
			require.Equal(rt, queue[0], res.Checkout.CardID)
		}
		requireConsistent(rt, f.repo)
	})
}
