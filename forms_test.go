package main

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "whole amount", input: "50", wantErr: false},
		{name: "decimal amount", input: "12.34", wantErr: false},
		{name: "surrounding whitespace", input: " 5 ", wantErr: false},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-10", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAmount(tt.input)
			if tt.wantErr {
				be.Nonzero(t, err)
			} else {
				be.NilErr(t, err)
			}
		})
	}
}

func TestRequireValue(t *testing.T) {
	validate := requireValue("username")

	be.NilErr(t, validate("alice"))
	be.Nonzero(t, validate(""))
	be.Nonzero(t, validate("   "))
}
