package rutas

import (
	"context"
	"errors"
	"testing"
)

// almacenMemoria aplica el diff sobre un slice, simulando la tabla
// detalle_rutas, y asigna IDs reales a las filas creadas.
type almacenMemoria struct {
	filas     []Detalle
	proximoID int64
	fallar    error
	llamadas  int
}

func (a *almacenMemoria) AplicarDiff(_ context.Context, rutaID int64, d Diff) ([]Detalle, error) {
	a.llamadas++
	if a.fallar != nil {
		return nil, a.fallar
	}

	borrar := map[int64]bool{}
	for _, id := range d.Eliminar {
		borrar[id] = true
	}
	out := []Detalle{}
	for _, f := range a.filas {
		if borrar[f.ID] {
			continue
		}
		for _, u := range d.Actualizar {
			if u.ID == f.ID {
				f.Orden = u.Orden
			}
		}
		out = append(out, f)
	}
	for _, c := range d.Crear {
		if a.proximoID == 0 {
			a.proximoID = 100
		}
		c.ID = a.proximoID
		a.proximoID++
		c.RutaID = rutaID
		out = append(out, c)
	}
	a.filas = out
	return out, nil
}

func detallesBase() []Detalle {
	return []Detalle{
		{ID: 1, RutaID: 9, ParadaID: 11, Orden: 1},
		{ID: 2, RutaID: 9, ParadaID: 12, Orden: 2},
		{ID: 3, RutaID: 9, ParadaID: 13, Orden: 3},
	}
}

func TestMoverParadaFueraDeRango(t *testing.T) {
	s := NuevaSesion(9, detallesBase())

	if s.MoverParada(0, Arriba) {
		t.Fatal("mover la primera parada hacia arriba debería ser no-op")
	}
	if s.MoverParada(2, Abajo) {
		t.Fatal("mover la última parada hacia abajo debería ser no-op")
	}
	if s.MoverParada(8, Abajo) {
		t.Fatal("índice fuera de rango aceptado")
	}
	if s.CambiosPendientes() {
		t.Fatal("sesión limpia quedó sucia tras no-ops")
	}
}

func TestMoverParadaIntercambia(t *testing.T) {
	s := NuevaSesion(9, detallesBase())

	if !s.MoverParada(1, Arriba) {
		t.Fatal("swap válido rechazado")
	}
	det := s.Detalles()
	if det[0].ParadaID != 12 || det[1].ParadaID != 11 {
		t.Fatalf("orden tras swap: %+v", det)
	}
	if !s.CambiosPendientes() {
		t.Fatal("swap no marcó la sesión como sucia")
	}
}

func TestAgregarParadaDuplicada(t *testing.T) {
	s := NuevaSesion(9, detallesBase())

	if _, err := s.AgregarParada(12); !errors.Is(err, ErrParadaDuplicada) {
		t.Fatalf("duplicado aceptado, err=%v", err)
	}
	if len(s.Detalles()) != 3 {
		t.Fatal("duplicado modificó la copia de trabajo")
	}

	det, err := s.AgregarParada(14)
	if err != nil {
		t.Fatal(err)
	}
	if det.ID >= 0 {
		t.Fatalf("parada nueva sin ID temporal negativo: %d", det.ID)
	}
	if det.Orden != 4 {
		t.Fatalf("orden=%d, se esperaba 4", det.Orden)
	}
}

func TestQuitarParadaNoRenumera(t *testing.T) {
	s := NuevaSesion(9, detallesBase())

	if !s.QuitarParada(2) {
		t.Fatal("no se pudo quitar detalle persistido")
	}
	det := s.Detalles()
	if len(det) != 2 {
		t.Fatalf("quedaron %d detalles", len(det))
	}
	// renumeración recién al guardar
	if det[1].Orden != 3 {
		t.Fatalf("orden renumerado antes de guardar: %+v", det[1])
	}
}

func TestDiffMinimo(t *testing.T) {
	s := NuevaSesion(9, detallesBase())

	s.QuitarParada(1)            // elimina parada 11
	s.MoverParada(1, Arriba)     // 13 antes que 12
	if _, err := s.AgregarParada(14); err != nil { // crea al final
		t.Fatal(err)
	}

	d := s.Diff()
	if len(d.Eliminar) != 1 || d.Eliminar[0] != 1 {
		t.Fatalf("eliminar=%v", d.Eliminar)
	}
	if len(d.Crear) != 1 || d.Crear[0].ParadaID != 14 || d.Crear[0].Orden != 3 {
		t.Fatalf("crear=%+v", d.Crear)
	}
	// 13 pasa de orden 3 a 1, 12 de 2 a 2 (sin cambio)
	if len(d.Actualizar) != 1 || d.Actualizar[0].ID != 3 || d.Actualizar[0].Orden != 1 {
		t.Fatalf("actualizar=%+v", d.Actualizar)
	}
}

func TestDiffSinCambios(t *testing.T) {
	s := NuevaSesion(9, detallesBase())
	if d := s.Diff(); !d.Vacio() {
		t.Fatalf("diff de sesión limpia no vacío: %+v", d)
	}
}

func TestGuardarRenumeraContiguo(t *testing.T) {
	alm := &almacenMemoria{filas: detallesBase(), proximoID: 50}
	s := NuevaSesion(9, detallesBase())

	s.MoverParada(2, Arriba)
	s.MoverParada(1, Arriba)
	if _, err := s.AgregarParada(20); err != nil {
		t.Fatal(err)
	}
	s.QuitarParada(2)

	if err := s.Guardar(context.Background(), alm); err != nil {
		t.Fatal(err)
	}
	if s.CambiosPendientes() {
		t.Fatal("sesión sigue sucia tras guardar")
	}

	det := s.Detalles()
	vistos := map[int]bool{}
	for i, d := range det {
		if d.Orden != i+1 {
			t.Fatalf("orden no contiguo en posición %d: %+v", i, det)
		}
		if vistos[d.Orden] {
			t.Fatalf("orden duplicado %d", d.Orden)
		}
		vistos[d.Orden] = true
		if d.ID <= 0 {
			t.Fatalf("ID temporal sobrevivió al guardado: %+v", d)
		}
	}
	if det[0].ParadaID != 13 {
		t.Fatalf("secuencia inesperada tras guardar: %+v", det)
	}
}

func TestGuardarFallaConservaCopia(t *testing.T) {
	alm := &almacenMemoria{filas: detallesBase(), fallar: errors.New("conexión perdida")}
	s := NuevaSesion(9, detallesBase())

	s.MoverParada(1, Abajo)
	antes := s.Detalles()

	if err := s.Guardar(context.Background(), alm); err == nil {
		t.Fatal("guardado fallido no reportó error")
	}
	if !s.CambiosPendientes() {
		t.Fatal("fallo de guardado limpió el estado sucio")
	}
	despues := s.Detalles()
	for i := range antes {
		if antes[i] != despues[i] {
			t.Fatalf("copia de trabajo alterada tras fallo: %+v vs %+v", antes, despues)
		}
	}
}

func TestGuardarSinCambiosNoLlamaAlmacen(t *testing.T) {
	alm := &almacenMemoria{filas: detallesBase()}
	s := NuevaSesion(9, detallesBase())

	if err := s.Guardar(context.Background(), alm); err != nil {
		t.Fatal(err)
	}
	if alm.llamadas != 0 {
		t.Fatalf("almacén llamado %d veces con diff vacío", alm.llamadas)
	}
}

func TestDescartar(t *testing.T) {
	s := NuevaSesion(9, detallesBase())
	s.MoverParada(1, Abajo)
	if _, err := s.AgregarParada(30); err != nil {
		t.Fatal(err)
	}

	s.Descartar()
	if s.CambiosPendientes() {
		t.Fatal("descartar dejó la sesión sucia")
	}
	det := s.Detalles()
	if len(det) != 3 || det[1].ParadaID != 12 {
		t.Fatalf("descartar no restauró la copia persistida: %+v", det)
	}
}
