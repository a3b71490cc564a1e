package common

import (
	"os"
	"strings"
	"testing"
)

func IsTestEnv() bool {
	return testing.Testing()
}

func IsDevelopment() bool {
	return os.Getenv(EnvKeyGoEnv) == "development"
}

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := 0; i < len(items); i++ {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := 0; i < len(items); i++ {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}

// AnonymizeName reduces a patient name to its initials for public surfaces:
// "John Doe" -> "J.D.", "Priya" -> "P.". Full names must never leave the
// process on a public display path.
func AnonymizeName(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	for _, token := range tokens {
		runes := []rune(token)
		b.WriteRune(runes[0])
		b.WriteByte('.')
	}
	return b.String()
}
