package memory_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/infrastructure/memory"
)

// ApplyDelta sobre un par sin fila la crea partiendo de cero.
func TestBalanceRepository_ApplyDeltaCreaFila(t *testing.T) {
	repo := memory.NewBalanceRepository(memory.NewStore())

	balance, err := repo.ApplyDelta("p-1", "l-1", -3, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(-3), balance.CurrentQty)

	got, err := repo.Get("p-1", "l-1")
	require.NoError(t, err)
	require.NotNil(t, got, "la fila debe existir tras el primer delta")
	assert.Equal(t, int64(-3), got.CurrentQty)
}

// Contrato de atomicidad por fila: K incrementos concurrentes de +1 sobre un
// par sin fila terminan exactamente en K. Ningún escritor puede leer-calcular-
// escribir por fuera del incremento.
func TestBalanceRepository_ApplyDeltaConcurrente(t *testing.T) {
	repo := memory.NewBalanceRepository(memory.NewStore())

	const k = 100
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.ApplyDelta("p-1", "l-1", 1, time.Now())
			assert.NoError(t, err)
		}()
	}
	close(start)
	wg.Wait()

	got, err := repo.Get("p-1", "l-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(k), got.CurrentQty)
}
