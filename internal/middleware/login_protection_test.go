// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestProtection(maxAttempts int) (*LoginProtection, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)}
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit:       10,
		IPBurst:           100,
		MaxFailedAttempts: maxAttempts,
		LockoutDuration:   time.Minute,
		AttemptWindow:     10 * time.Minute,
		Now:               clock.now,
	})
	return lp, clock
}

func TestNewLoginProtectionDefaultValues(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{})
	def := DefaultLoginProtectionConfig()

	if lp.maxFailedAttempts != def.MaxFailedAttempts {
		t.Errorf("maxFailedAttempts = %d, want %d", lp.maxFailedAttempts, def.MaxFailedAttempts)
	}
	if lp.lockoutDuration != def.LockoutDuration || lp.attemptWindow != def.AttemptWindow {
		t.Errorf("durations = %v/%v", lp.lockoutDuration, lp.attemptWindow)
	}
}

func TestAccountLockout(t *testing.T) {
	lp, clock := newTestProtection(3)
	email := "admin@funteco.org"

	for i := 0; i < 2; i++ {
		if locked, _ := lp.RecordFailedAttempt(email); locked {
			t.Fatalf("locked after %d attempts", i+1)
		}
	}
	if got := lp.RemainingAttempts(email); got != 1 {
		t.Errorf("RemainingAttempts = %d, want 1", got)
	}

	locked, d := lp.RecordFailedAttempt(" ADMIN@funteco.org ")
	if !locked || d != time.Minute {
		t.Fatalf("third attempt: locked=%v duration=%v", locked, d)
	}
	if locked, remaining := lp.IsAccountLocked(email); !locked || remaining != time.Minute {
		t.Errorf("IsAccountLocked = %v, %v", locked, remaining)
	}

	clock.advance(61 * time.Second)
	if locked, _ := lp.IsAccountLocked(email); locked {
		t.Error("lock should expire")
	}
}

func TestLockoutBackoffDoubles(t *testing.T) {
	lp, clock := newTestProtection(1)
	email := "admin@funteco.org"

	var durations []time.Duration
	for i := 0; i < 3; i++ {
		_, d := lp.RecordFailedAttempt(email)
		durations = append(durations, d)
		clock.advance(d + time.Second)
	}

	want := []time.Duration{time.Minute, 2 * time.Minute, 4 * time.Minute}
	for i := range want {
		if durations[i] != want[i] {
			t.Errorf("lockout %d = %v, want %v", i, durations[i], want[i])
		}
	}
}

func TestAttemptWindowResets(t *testing.T) {
	lp, clock := newTestProtection(3)
	email := "admin@funteco.org"

	lp.RecordFailedAttempt(email)
	lp.RecordFailedAttempt(email)
	clock.advance(11 * time.Minute)

	if got := lp.RemainingAttempts(email); got != 3 {
		t.Errorf("RemainingAttempts after window = %d, want 3", got)
	}
	if locked, _ := lp.RecordFailedAttempt(email); locked {
		t.Error("counter should restart after the window")
	}
}

func TestSuccessfulLoginClears(t *testing.T) {
	lp, _ := newTestProtection(3)
	email := "admin@funteco.org"
	lp.RecordFailedAttempt(email)
	lp.RecordSuccessfulLogin(email)

	if got := lp.RemainingAttempts(email); got != 3 {
		t.Errorf("RemainingAttempts = %d, want 3", got)
	}
}

func TestCleanupStaleEntries(t *testing.T) {
	lp, clock := newTestProtection(3)
	lp.RecordFailedAttempt("a@funteco.org")
	clock.advance(11 * time.Minute)
	lp.RecordFailedAttempt("b@funteco.org")

	lp.cleanupStaleEntries()

	lp.attemptsMu.RLock()
	defer lp.attemptsMu.RUnlock()
	if _, ok := lp.failedAttempts["a@funteco.org"]; ok {
		t.Error("stale entry should be removed")
	}
	if _, ok := lp.failedAttempts["b@funteco.org"]; !ok {
		t.Error("recent entry should stay")
	}
}

func TestLoginProtectionMiddleware(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{IPRateLimit: 0.001, IPBurst: 2})
	handler := lp.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}))

	post := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/admin/sessions", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 0; i < 2; i++ {
		if code := post("10.0.0.1:5000"); code != http.StatusSeeOther {
			t.Fatalf("request %d: status %d", i, code)
		}
	}
	if code := post("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("third request from same IP: status %d, want 429", code)
	}
	if code := post("10.0.0.2:5000"); code != http.StatusSeeOther {
		t.Errorf("other IP: status %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Errorf("GET should not be limited, got %d", rr.Code)
	}
}
