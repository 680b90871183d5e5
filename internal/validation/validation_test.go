package validation

import (
	"testing"
)

func TestCreateIntentRequest_Valid(t *testing.T) {
	v := New()

	req := CreateIntentRequest{
		Email:    "buyer@example.com",
		Amount:   25.00,
		CardName: "Ada Lovelace",
	}

	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestCreateIntentRequest_BelowMinimum(t *testing.T) {
	v := New()

	req := CreateIntentRequest{
		Email:    "buyer@example.com",
		Amount:   9.99,
		CardName: "Ada Lovelace",
	}

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for amount below minimum, got nil")
	}
}

func TestCreateIntentRequest_MinimumExactlyAccepted(t *testing.T) {
	v := New()

	req := CreateIntentRequest{
		Email:    "buyer@example.com",
		Amount:   10.00,
		CardName: "Ada Lovelace",
	}

	if err := v.Struct(req); err != nil {
		t.Fatalf("10.00 is the minimum and must pass, got: %v", err)
	}
}

func TestCreateIntentRequest_MissingFields(t *testing.T) {
	v := New()

	req := CreateIntentRequest{
		// Email missing
		Amount: 25.00,
	}

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation errors for missing required fields, got nil")
	}
}

func TestConfirmPaymentRequest_RequiresReferenceAndToken(t *testing.T) {
	v := New()

	req := ConfirmPaymentRequest{
		Email:    "buyer@example.com",
		Amount:   25.00,
		CardName: "Ada Lovelace",
		// PaymentIntentID and CardToken missing
	}

	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing payment details, got nil")
	}
}

func TestGiveawayRequest_OnlyEmailAndUsernameRequired(t *testing.T) {
	v := New()

	if err := v.Struct(GiveawayRequest{Email: "a@b.com", Username: "flounder42"}); err != nil {
		t.Fatalf("expected valid, got: %v", err)
	}
	if err := v.Struct(GiveawayRequest{Email: "a@b.com"}); err == nil {
		t.Fatal("expected validation error for missing username, got nil")
	}
}
