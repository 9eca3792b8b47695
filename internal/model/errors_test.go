// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		kind  ErrorKind
		check func(error) bool
	}{
		{"forbidden", Forbidden("sin permisos para crear usuarios"), KindForbidden, IsForbidden},
		{"not found", NotFound("usuario no encontrado"), KindNotFound, IsNotFound},
		{"validation", Invalid("rol inválido"), KindValidation, IsValidation},
		{"credentials", ErrInvalidCredentials, KindCredentials, IsCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.kind {
				t.Errorf("KindOf() = %v, want %v", got, tt.kind)
			}
			if !tt.check(tt.err) {
				t.Error("predicate returned false")
			}
			wrapped := fmt.Errorf("op: %w", tt.err)
			if !tt.check(wrapped) {
				t.Error("predicate should see through wrapping")
			}
		})
	}
}

func TestKindOfPlainError(t *testing.T) {
	err := errors.New("boom")
	if KindOf(err) != 0 {
		t.Errorf("KindOf(plain) = %v, want 0", KindOf(err))
	}
	if IsForbidden(err) || IsNotFound(err) || IsValidation(err) || IsCredentials(err) {
		t.Error("plain error matched a kind")
	}
}

func TestErrorKindString(t *testing.T) {
	if KindValidation.String() != "validation_error" {
		t.Errorf("String() = %q", KindValidation.String())
	}
	if ErrorKind(99).String() != "unknown" {
		t.Errorf("String() = %q", ErrorKind(99).String())
	}
}
