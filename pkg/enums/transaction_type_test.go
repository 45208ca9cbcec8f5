package enums

import "testing"

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		raw     string
		want    TransactionType
		wantErr bool
	}{
		{raw: "incoming", want: TransactionTypeIncoming},
		{raw: "outgoing", want: TransactionTypeOutgoing},
		{raw: "Incoming", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "transfer", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTransactionType(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %s got %s", tt.raw, tt.want, got)
		}
	}
}

func TestTransactionTypeSign(t *testing.T) {
	if TransactionTypeIncoming.Sign() != 1 {
		t.Fatalf("incoming should add stock")
	}
	if TransactionTypeOutgoing.Sign() != -1 {
		t.Fatalf("outgoing should remove stock")
	}
	if TransactionType("bogus").IsValid() {
		t.Fatalf("unexpected valid type")
	}
}
