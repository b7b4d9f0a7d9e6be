package economy

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeeSanghyun1212/Item-Simulator/internal/concurrency"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/domain"
	"github.com/LeeSanghyun1212/Item-Simulator/internal/testing/leaktest"
)

// Two services with separate lock managers stand in for two app instances;
// only the store's row lock orders them.
func newInstances(repo *FakeRepository) []Service {
	opts := Options{RetryBackoff: time.Millisecond}
	return []Service{
		NewService(repo, concurrency.NewLockManager(), opts),
		NewService(repo, concurrency.NewLockManager(), opts),
	}
}

func TestConcurrentEquip_ExactlyOneWins(t *testing.T) {
	repo := newTestRepo()
	repo.SetInventory(charID, codeSword, 2)
	svcs := newInstances(repo)

	const workers = 10
	var ok, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(svc Service) {
			defer wg.Done()
			_, err := svc.Equip(context.Background(), charID, ownerID, codeSword)
			switch domain.KindOf(err) {
			case "":
				ok.Add(1)
			case domain.KindConflict:
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(svcs[i%len(svcs)])
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(workers-1), conflicts.Load())

	c := repo.Character(charID)
	assert.Equal(t, 550, c.Health)
	assert.Equal(t, 110, c.Power)
	q, _ := repo.Quantity(charID, codeSword)
	assert.Equal(t, 1, q)
	assert.Equal(t, 1, repo.EquippedCount(charID))
}

func TestConcurrentPurchase_NoDoubleSpend(t *testing.T) {
	repo := newTestRepo()
	withMoney(repo, 1000)
	svcs := newInstances(repo)

	const workers = 20
	var ok, broke atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(svc Service) {
			defer wg.Done()
			_, err := svc.Purchase(context.Background(), charID, ownerID, []domain.LineItem{{ItemCode: codePotion, Count: 1}})
			switch domain.KindOf(err) {
			case "":
				ok.Add(1)
			case domain.KindInsufficientFunds:
				broke.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(svcs[i%len(svcs)])
	}
	wg.Wait()

	assert.Equal(t, int32(10), ok.Load())
	assert.Equal(t, int32(10), broke.Load())
	assert.Equal(t, 0, repo.Character(charID).Money)
	q, _ := repo.Quantity(charID, codePotion)
	assert.Equal(t, 10, q)
}

func TestConcurrentMixed_ConservesValue(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	repo := newTestRepo()
	withMoney(repo, 0)
	repo.SetInventory(charID, codePotion, 50)
	svcs := newInstances(repo)

	// each sale credits 60 and each income credits 100
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(svc Service) {
			defer wg.Done()
			_, err := svc.Sell(context.Background(), charID, ownerID, []domain.LineItem{{ItemCode: codePotion, Count: 1}})
			assert.NoError(t, err)
		}(svcs[i%len(svcs)])
		go func(svc Service) {
			defer wg.Done()
			_, err := svc.EarnIncome(context.Background(), charID, ownerID)
			assert.NoError(t, err)
		}(svcs[(i+1)%len(svcs)])
	}
	wg.Wait()

	require.Equal(t, 20*60+20*domain.PassiveIncomeAmount, repo.Character(charID).Money)
	q, _ := repo.Quantity(charID, codePotion)
	assert.Equal(t, 30, q)

	for _, svc := range svcs {
		require.NoError(t, svc.Shutdown(context.Background()))
	}
	checker.Check(0)
}
