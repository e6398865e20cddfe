package validate

import (
	"testing"

	perr "xaoc/internal/platform/errors"
)

type span struct {
	From int `validate:"gte=2015"`
	To   int `validate:"min=1,max=25"`
}

func TestStruct(t *testing.T) {
	cases := []struct {
		in   span
		want string
	}{
		{span{2015, 1}, ""},
		{span{2014, 1}, "From must be 2015 or later"},
		{span{2020, 0}, "To must be at least 1"},
		{span{2020, 26}, "To must be at most 25"},
	}
	for _, tc := range cases {
		err := Struct(tc.in)
		if tc.want == "" {
			if err != nil {
				t.Fatalf("Struct(%+v) = %v", tc.in, err)
			}
			continue
		}
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgs) {
			t.Fatalf("Struct(%+v) code = %v", tc.in, perr.CodeOf(err))
		}
		if err.Error() != tc.want {
			t.Fatalf("Struct(%+v) = %q, want %q", tc.in, err.Error(), tc.want)
		}
	}
}

func TestStructRejectsNonStruct(t *testing.T) {
	err := Struct(42)
	if err == nil || perr.IsCode(err, perr.ErrorCodeInvalidArgs) {
		t.Fatalf("err = %v", err)
	}
	if Get() != Get() {
		t.Fatalf("singleton rebuilt")
	}
}
