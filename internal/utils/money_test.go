package utils

import "testing"

func TestFormatGuaranies(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Gs. 0"},
		{950, "Gs. 950"},
		{85000, "Gs. 85.000"},
		{1500000, "Gs. 1.500.000"},
		{-120000, "-Gs. 120.000"},
	}
	for _, tc := range cases {
		if got := FormatGuaranies(tc.in); got != tc.want {
			t.Fatalf("FormatGuaranies(%d) = %q, se esperaba %q", tc.in, got, tc.want)
		}
	}
}

func TestParseGuaranies(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"Gs. 1.500.000", 1500000},
		{"gs 85.000", 85000},
		{"120000", 120000},
	}
	for _, tc := range cases {
		got, err := ParseGuaranies(tc.in)
		if err != nil {
			t.Fatalf("ParseGuaranies(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseGuaranies(%q) = %d, se esperaba %d", tc.in, got, tc.want)
		}
	}

	if _, err := ParseGuaranies("Gs."); err == nil {
		t.Fatal("monto vacío aceptado")
	}
}

func TestDiaSemanaActivo(t *testing.T) {
	// 2025-01-06 es lunes
	lunes, err := ParseDate("2025-01-06")
	if err != nil {
		t.Fatal(err)
	}
	domingo := lunes.AddDate(0, 0, 6)

	if !DiaSemanaActivo("1111100", lunes) {
		t.Fatal("lunes debería estar activo en 1111100")
	}
	if DiaSemanaActivo("1111100", domingo) {
		t.Fatal("domingo no debería estar activo en 1111100")
	}
	if DiaSemanaActivo("111", lunes) {
		t.Fatal("máscara corta aceptada")
	}
}
