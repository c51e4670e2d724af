package apiclient

import (
	"context"
	"sync"
)

// Fetch es una carga independiente dentro de un fan-out: trae datos y
// los aplica a donde corresponda.
type Fetch func(ctx context.Context) error

// FanOut lanza todas las cargas en paralelo y espera a todas. Las que
// terminan bien aplican su resultado aunque otras fallen; los errores
// se devuelven en el orden de las cargas, con nil en las exitosas.
// Pensado para el estilo "cargar toda la pantalla de una".
func FanOut(ctx context.Context, fetches ...Fetch) []error {
	errs := make([]error, len(fetches))

	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func(i int, f Fetch) {
			defer wg.Done()
			errs[i] = f(ctx)
		}(i, f)
	}
	wg.Wait()
	return errs
}

// FirstError devuelve el primer error no nulo del resultado de FanOut.
func FirstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
