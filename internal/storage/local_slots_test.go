package storage

import (
	"context"
	"errors"
	"testing"
)

func TestLocalSlots_ReadWrite(t *testing.T) {
	s := NewLocalSlots(0)
	ctx := context.Background()

	if _, err := s.Read(ctx, "k"); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty, got %v", err)
	}

	data := []byte("hello")
	if err := s.Write(ctx, "k", data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data[0] = 'j' // caller buffer must not alias stored bytes

	got, err := s.Read(ctx, "k")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("Read = %q; want %q", got, "hello")
	}
	got[0] = 'x'
	if again, _ := s.Read(ctx, "k"); string(again) != "hello" {
		t.Errorf("stored value mutated through Read result: %q", again)
	}
}

func TestLocalSlots_Quota(t *testing.T) {
	s := NewLocalSlots(10)
	ctx := context.Background()

	// key "a" + 5 bytes = 6
	if err := s.Write(ctx, "a", []byte("12345")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if s.Used() != 6 {
		t.Errorf("Used = %d; want 6", s.Used())
	}

	// 6 + 6 > 10
	if err := s.Write(ctx, "b", []byte("12345")); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if _, err := s.Read(ctx, "b"); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("rejected write must not be stored, got %v", err)
	}

	// overwriting "a" only counts the new size
	if err := s.Write(ctx, "a", []byte("123456789")); err != nil {
		t.Fatalf("overwrite within quota: %v", err)
	}
	if s.Used() != 10 {
		t.Errorf("Used = %d; want 10", s.Used())
	}
}
