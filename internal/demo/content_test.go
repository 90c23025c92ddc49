package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContent_EveryPaneHasTitleAndBody(t *testing.T) {
	left, center, right := Content()

	for _, p := range []Pane{left, center, right} {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Body)
	}
}
