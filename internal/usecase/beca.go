package usecase

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/becas/internal/domain/errors"
	"github.com/polkiloo/becas/internal/domain/model"
)

const (
	minAmount   = 1000
	amountRange = 5000
)

// InitialBecas is the catalog every process starts with.
func InitialBecas() []model.Beca {
	return []model.Beca{
		{ID: 1, Name: "Beca de Excelencia Académica", Description: "Para estudiantes con promedio superior a 9.5", Amount: 5000},
		{ID: 2, Name: "Beca Deportiva", Description: "Para atletas destacados en competencias nacionales", Amount: 3500},
		{ID: 3, Name: "Beca de Apoyo Económico", Description: "Para estudiantes con necesidad económica comprobable", Amount: 2000},
	}
}

// BecaUseCase owns the in-memory scholarship catalog. Nothing is persisted;
// a restart brings back InitialBecas.
type BecaUseCase struct {
	mu     sync.RWMutex
	becas  []model.Beca
	lastID int64

	now    func() time.Time
	amount func() int64
}

// NewBecaUseCase constructs BecaUseCase seeded with InitialBecas.
func NewBecaUseCase() *BecaUseCase {
	initial := InitialBecas()
	return &BecaUseCase{
		becas:  initial,
		lastID: initial[len(initial)-1].ID,
		now:    time.Now,
		amount: func() int64 { return minAmount + rand.Int64N(amountRange) },
	}
}

// List returns a snapshot of the catalog in insertion order.
func (u *BecaUseCase) List(ctx context.Context) []model.Beca {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]model.Beca, len(u.becas))
	copy(out, u.becas)
	return out
}

// Add appends a beca with a random amount. IDs are millisecond timestamps,
// bumped when two additions land in the same millisecond.
func (u *BecaUseCase) Add(ctx context.Context, name, description string) (*model.Beca, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, domainErrors.ErrInvalidBeca
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	id := u.now().UnixMilli()
	if id <= u.lastID {
		id = u.lastID + 1
	}
	u.lastID = id

	beca := model.Beca{
		ID:          id,
		Name:        name,
		Description: description,
		Amount:      u.amount(),
	}
	u.becas = append(u.becas, beca)
	return &beca, nil
}
