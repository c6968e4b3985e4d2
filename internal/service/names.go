package service

import (
	"strings"
	"unicode"
)

// SplitName separa un display name en (firstName, lastName) para las
// tablas. Muchos usernames vienen como nombre+apellido pegados
// ("JohnDoe"), así que si no hay espacio buscamos la segunda corrida
// que empieza en mayúscula. Nunca falla: si no se puede separar,
// el apellido queda en "Unknown".
func SplitName(fullName string) (string, string) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return "Unknown", "Unknown"
	}

	if parts := strings.Fields(fullName); len(parts) > 1 {
		return parts[0], strings.Join(parts[1:], " ")
	}

	// heurística "JohnDoe": corta donde arranca la segunda mayúscula
	runes := []rune(fullName)
	if unicode.IsUpper(runes[0]) {
		for i := 1; i < len(runes); i++ {
			if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
				return string(runes[:i]), string(runes[i:])
			}
		}
	}

	return fullName, "Unknown"
}
