package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llanterasoft/llantera-pos/pkg/strutil"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cámara", "camara"},
		{"VÁLVULA", "valvula"},
		{"rin 15", "rin 15"},
		{"Núñez", "nunez"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, strutil.Fold(c.in), "Fold(%q)", c.in)
	}
}
