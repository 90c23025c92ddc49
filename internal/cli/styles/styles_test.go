package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/overpane/internal/cli/styles"
)

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo("/tmp/overpane/config.toml", false)
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "defaults in use")

	out = r.RenderConfigInfo("/tmp/overpane/config.toml", true)
	require.Contains(t, out, "in use")
	require.NotContains(t, out, "defaults")
}

func TestConfigRenderer_RenderCreated(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderCreated("/a/b/config.toml", true), "config.toml")
	assert.Contains(t, r.RenderCreated("/a/b/config.toml", false), "already exists")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestOffsetsRow_ToRow(t *testing.T) {
	tests := []struct {
		name string
		row  styles.OffsetsRow
		want []string
	}{
		{
			name: "center has no drawer",
			row:  styles.OffsetsRow{State: "center", Offset: 0},
			want: []string{"center", "0", "-", "-"},
		},
		{
			name: "drawer values are rounded",
			row:  styles.OffsetsRow{State: "left", Offset: -266.6666, DrawerX: 33.3333, DrawerWidth: 266.6666, HasDrawer: true},
			want: []string{"left", "-266.67", "33.33", "266.67"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, []string(tt.row.ToRow()))
		})
	}
}

func TestDefaultPanelsKeyMap_HelpCoversEveryBinding(t *testing.T) {
	k := styles.DefaultPanelsKeyMap()

	var full int
	for _, group := range k.FullHelp() {
		full += len(group)
	}
	assert.Equal(t, len(k.ShortHelp()), full)
}
