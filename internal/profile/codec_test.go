package profile

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
	}{
		{
			"accented surname",
			Profile{
				GivenName:       "José",
				PaternalSurname: "Muñoz Ibáñez",
				MaternalSurname: "Peña",
				BirthDay:        29,
				BirthMonth:      2,
				BirthYear:       1988,
				Sex:             SexMale,
			},
		},
		{
			"partial profile, empty sex",
			Profile{
				GivenName:       "Ana",
				PaternalSurname: "Lopez",
				BirthDay:        1,
				BirthMonth:      1,
				BirthYear:       1990,
			},
		},
		{"zero value", Profile{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := Encode(tt.p)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(enc)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != tt.p {
				t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, tt.p)
			}
		})
	}
}

func TestEncodeIsURLSafe(t *testing.T) {
	p := Profile{GivenName: "María José", PaternalSurname: "Núñez"}
	enc, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, c := range []string{" ", "\"", "{", "}"} {
		if strings.Contains(enc, c) {
			t.Errorf("encoded payload contains unescaped %q: %s", c, enc)
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode("not-json-at-all"); err == nil {
		t.Error("expected error decoding non-JSON payload")
	}
	if _, err := Decode("%zz"); err == nil {
		t.Error("expected error decoding bad escape sequence")
	}
}
