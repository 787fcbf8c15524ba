package input

import "testing"

func TestValidateBid(t *testing.T) {
	valid := []string{"1 ::", "2 2::", "3 :4:", "7 ::4", "9 1::1", "69 4:20:", "2 :2:2", "4 1:1:1  "}
	for _, raw := range valid {
		if !ValidateBid(raw) {
			t.Fatalf("ValidateBid(%q) = false, want true", raw)
		}
	}

	invalid := []string{"::", "2 2", "3 2:", "f ::2", "2 win", ""}
	for _, raw := range invalid {
		if ValidateBid(raw) {
			t.Fatalf("ValidateBid(%q) = true, want false", raw)
		}
	}
}

func TestValidateInstantWin(t *testing.T) {
	if !ValidateInstantWin("4 win") || !ValidateInstantWin("9 win   ") {
		t.Fatal("well-formed instant win rejected")
	}
	if ValidateInstantWin("f win") || ValidateInstantWin("1 iwn") {
		t.Fatal("malformed instant win accepted")
	}
}

func TestValidateFreebie(t *testing.T) {
	if !ValidateFreebie("7 free") {
		t.Fatal("well-formed freebie rejected")
	}
	if ValidateFreebie("free") || ValidateFreebie("7 freed") {
		t.Fatal("malformed freebie accepted")
	}
}

func TestValidateConversion(t *testing.T) {
	valid := []string{"::", "2::", ":4:", "::4", "1::1", "4:20:", ":2:2", "1:1:1  "}
	for _, raw := range valid {
		if !ValidateConversion(raw) {
			t.Fatalf("ValidateConversion(%q) = false, want true", raw)
		}
	}
	if ValidateConversion("1:1") || ValidateConversion("a::") {
		t.Fatal("malformed conversion accepted")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{raw: "2 3:2:0", want: KindBid},
		{raw: "4 win", want: KindInstantWin},
		{raw: "7 free", want: KindFreebie},
		{raw: "6::9", want: KindConversion},
		{raw: "gibberish", want: KindInvalid},
		{raw: "", want: KindInvalid},
	}

	for _, tt := range tests {
		if got := Classify(tt.raw); got != tt.want {
			t.Fatalf("Classify(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseBid(t *testing.T) {
	teamID, amount := ParseBid("2 1:0:0")
	if teamID != 2 || amount != 493 {
		t.Fatalf("ParseBid(\"2 1:0:0\") = %d, %d, want 2, 493", teamID, amount)
	}

	teamID, amount = ParseBid("  5 :10:  ")
	if teamID != 5 || amount != 290 {
		t.Fatalf("ParseBid(\"5 :10:\") = %d, %d, want 5, 290", teamID, amount)
	}
}

func TestParseTeamID(t *testing.T) {
	if got := ParseTeamID("12 win"); got != 12 {
		t.Fatalf("ParseTeamID(\"12 win\") = %d, want 12", got)
	}
	if got := ParseTeamID(" 3 free "); got != 3 {
		t.Fatalf("ParseTeamID(\"3 free\") = %d, want 3", got)
	}
}

func TestParseConversion(t *testing.T) {
	if got := ParseConversion("1:0:0"); got != 493 {
		t.Fatalf("ParseConversion(\"1:0:0\") = %d, want 493", got)
	}
}

func TestNormalizeBid(t *testing.T) {
	if got := NormalizeBid("2 1::"); got != "1:0:0" {
		t.Fatalf("NormalizeBid(\"2 1::\") = %q, want \"1:0:0\"", got)
	}
}
