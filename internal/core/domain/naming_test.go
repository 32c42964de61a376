package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/base47/internal/core/domain"
)

func TestNaturalCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "numeric runs", a: "set2", b: "set10", want: -1},
		{name: "case insensitive", a: "Alpha", b: "alpha", want: 0},
		{name: "leading zeros", a: "v007", b: "v7", want: 0},
		{name: "prefix shorter first", a: "set", b: "set-a", want: -1},
		{name: "letters", a: "beta", b: "alpha", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NaturalCompare(tt.a, tt.b))
		})
	}
}

func TestSortNatural(t *testing.T) {
	names := []string{"set10", "Set2", "set1", "set2"}
	domain.SortNatural(names)
	assert.Equal(t, []string{"set1", "Set2", "set2", "set10"}, names)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "About Us", want: "about-us"},
		{in: "home_page", want: "home_page"},
		{in: "Café Menü", want: "cafe-menu"},
		{in: "--Hello...World--", want: "hello-world"},
		{in: "关于", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Slugify(tt.in))
		})
	}
}

func TestHandlePrefix(t *testing.T) {
	assert.Equal(t, "mivon-templates", domain.HandlePrefix("Mivon-Templates"))
	assert.Equal(t, "a-b", domain.HandlePrefix("a__b"))
	assert.Equal(t, "set", domain.HandlePrefix("***"))
}

func TestSetBaseName(t *testing.T) {
	assert.Equal(t, "mivon", domain.SetBaseName("mivon-templates"))
	assert.Equal(t, "old", domain.SetBaseName("old-templetes"))
	assert.Equal(t, "plain", domain.SetBaseName("plain"))
}

func TestIsTemplateFile(t *testing.T) {
	assert.True(t, domain.IsTemplateFile("index.html"))
	assert.True(t, domain.IsTemplateFile("ABOUT.HTM"))
	assert.False(t, domain.IsTemplateFile("style.css"))
	assert.Equal(t, "index", domain.TemplateStem("index.html"))
	assert.Equal(t, ".hidden", domain.TemplateStem(".hidden"))
}
