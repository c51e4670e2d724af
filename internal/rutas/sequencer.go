// Package rutas mantiene la secuencia ordenada de paradas de una ruta.
//
// A session holds a mutable working copy of the route's stops while the
// management dialog is open. Mutations stay local until Guardar, which
// applies a minimal diff in one transaction; nothing is persisted per
// keystroke and a failed save keeps the working copy so the operator
// can retry.
package rutas

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Detalle is one ordered stop within a route. Staged entries (added in
// this session, never persisted) carry negative IDs until saved.
type Detalle struct {
	ID       int64 `json:"id_detalle"`
	RutaID   int64 `json:"ruta"`
	ParadaID int64 `json:"parada"`
	Orden    int   `json:"orden"`
}

// Direccion of an adjacent move.
type Direccion string

const (
	Arriba Direccion = "arriba"
	Abajo  Direccion = "abajo"
)

var (
	ErrParadaDuplicada = errors.New("la parada ya pertenece a la ruta")
	ErrGuardando       = errors.New("hay un guardado en curso")
)

// Diff is the minimal change set between the persisted stops and the
// working copy: creates for staged entries, orden updates for moved
// ones, deletes for removed ones. Applied atomically by the store.
type Diff struct {
	Crear      []Detalle
	Actualizar []Detalle
	Eliminar   []int64
}

// Vacio reports whether the diff changes nothing.
func (d Diff) Vacio() bool {
	return len(d.Crear) == 0 && len(d.Actualizar) == 0 && len(d.Eliminar) == 0
}

// Almacen persists a route's stop diff in a single transaction and
// returns the resulting rows with orden 1..N and real IDs.
type Almacen interface {
	AplicarDiff(ctx context.Context, rutaID int64, d Diff) ([]Detalle, error)
}

// Sesion is the working copy for one open management dialog.
type Sesion struct {
	rutaID      int64
	persistidos []Detalle
	trabajo     []Detalle
	sucio       bool
	guardando   bool
	proximoTemp int64
}

// NuevaSesion opens a session over the persisted stops, sorted by orden.
func NuevaSesion(rutaID int64, detalles []Detalle) *Sesion {
	base := make([]Detalle, len(detalles))
	copy(base, detalles)
	sort.SliceStable(base, func(i, j int) bool { return base[i].Orden < base[j].Orden })

	s := &Sesion{
		rutaID:      rutaID,
		persistidos: base,
		proximoTemp: -1,
	}
	s.trabajo = make([]Detalle, len(base))
	copy(s.trabajo, base)
	return s
}

// Detalles returns the working copy in its current order.
func (s *Sesion) Detalles() []Detalle {
	out := make([]Detalle, len(s.trabajo))
	copy(out, s.trabajo)
	return out
}

// CambiosPendientes reports whether the session is dirty. The caller
// must confirm with the operator before discarding a dirty session.
func (s *Sesion) CambiosPendientes() bool { return s.sucio }

// AgregarParada appends the stop at the end of the working copy with
// orden = len+1. Duplicates are rejected.
func (s *Sesion) AgregarParada(paradaID int64) (Detalle, error) {
	for _, d := range s.trabajo {
		if d.ParadaID == paradaID {
			return Detalle{}, fmt.Errorf("parada %d: %w", paradaID, ErrParadaDuplicada)
		}
	}
	det := Detalle{
		ID:       s.proximoTemp,
		RutaID:   s.rutaID,
		ParadaID: paradaID,
		Orden:    len(s.trabajo) + 1,
	}
	s.proximoTemp--
	s.trabajo = append(s.trabajo, det)
	s.sucio = true
	return det, nil
}

// QuitarParada removes the entry with the given detail ID from the
// working copy. Remaining orden values are left alone; renumbering
// happens at save time.
func (s *Sesion) QuitarParada(id int64) bool {
	for i, d := range s.trabajo {
		if d.ID == id {
			s.trabajo = append(s.trabajo[:i], s.trabajo[i+1:]...)
			s.sucio = true
			return true
		}
	}
	return false
}

// MoverParada swaps the entry at index with its neighbor. Out-of-bounds
// moves are a no-op and do not dirty a clean session.
func (s *Sesion) MoverParada(index int, dir Direccion) bool {
	if index < 0 || index >= len(s.trabajo) {
		return false
	}
	if (dir == Arriba && index == 0) || (dir == Abajo && index == len(s.trabajo)-1) {
		return false
	}
	j := index + 1
	if dir == Arriba {
		j = index - 1
	}
	s.trabajo[index], s.trabajo[j] = s.trabajo[j], s.trabajo[index]
	s.sucio = true
	return true
}

// Diff computes the minimal change set against the persisted copy,
// renumbering the working copy as a contiguous 1..N permutation.
func (s *Sesion) Diff() Diff {
	var d Diff

	vivos := make(map[int64]bool, len(s.trabajo))
	for i, det := range s.trabajo {
		orden := i + 1
		if det.ID < 0 {
			d.Crear = append(d.Crear, Detalle{RutaID: s.rutaID, ParadaID: det.ParadaID, Orden: orden})
			continue
		}
		vivos[det.ID] = true
		for _, prev := range s.persistidos {
			if prev.ID == det.ID {
				if prev.Orden != orden {
					d.Actualizar = append(d.Actualizar, Detalle{ID: det.ID, RutaID: s.rutaID, ParadaID: det.ParadaID, Orden: orden})
				}
				break
			}
		}
	}

	for _, prev := range s.persistidos {
		if !vivos[prev.ID] {
			d.Eliminar = append(d.Eliminar, prev.ID)
		}
	}
	return d
}

// Guardar aplica el diff contra el almacén. On success the session
// becomes clean with the store's resulting rows as the new base; on
// failure the working copy and dirty flag are preserved for retry.
func (s *Sesion) Guardar(ctx context.Context, almacen Almacen) error {
	if s.guardando {
		return ErrGuardando
	}
	diff := s.Diff()
	if diff.Vacio() {
		s.sucio = false
		return nil
	}

	s.guardando = true
	defer func() { s.guardando = false }()

	resultado, err := almacen.AplicarDiff(ctx, s.rutaID, diff)
	if err != nil {
		return err
	}

	sort.SliceStable(resultado, func(i, j int) bool { return resultado[i].Orden < resultado[j].Orden })
	s.persistidos = resultado
	s.trabajo = make([]Detalle, len(resultado))
	copy(s.trabajo, resultado)
	s.sucio = false
	return nil
}

// Descartar vuelve a la última copia persistida.
func (s *Sesion) Descartar() {
	s.trabajo = make([]Detalle, len(s.persistidos))
	copy(s.trabajo, s.persistidos)
	s.sucio = false
}
