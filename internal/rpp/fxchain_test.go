package rpp

import (
	"testing"

	"github.com/s95rob/ReaParser/internal/types"
)

func parseOneChain(t *testing.T, chainBody string) []types.FX {
	t.Helper()
	doc := "<REAPER_PROJECT 0.1 \"6.12/win64\" 1\n" +
		"  <TRACK {X}\n" +
		"    <FXCHAIN\n" +
		chainBody +
		"    >\n" +
		"  >\n>"
	project := parseDoc(t, doc, rawOptions())
	return project.Tracks[1].FXChain
}

func TestClassifyFXTag(t *testing.T) {
	tests := []struct {
		tag      string
		expected types.FXType
	}{
		{"VST3i", types.FXVST3i},
		{"VST3", types.FXVST3},
		{"VSTi", types.FXVSTi},
		{"VST", types.FXVST},
		{"AUi", types.FXAUi},
		{"AU", types.FXAU},
		{"CLAP", types.FXUndefined},
		{"DX", types.FXUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := classifyFXTag(tt.tag); got != tt.expected {
				t.Errorf("classifyFXTag(%q) = %v, want %v", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestChainStandardEntry(t *testing.T) {
	chain := parseOneChain(t, `      BYPASS 0 0 0
      <VST3i "VST3i: Serum" Serum.vst3 0 ""
        AAAA BBBB
        	CCCC
      >
      FLOATPOS 0 0 0 0
      WAK 0 0
`)

	if len(chain) != 1 {
		t.Fatalf("len(chain) = %d, want 1", len(chain))
	}
	fx := chain[0]

	if fx.Type != types.FXVST3i {
		t.Errorf("Type = %v, want %v", fx.Type, types.FXVST3i)
	}
	if fx.Name != "VST3i: Serum" {
		t.Errorf("Name = %q, want %q", fx.Name, "VST3i: Serum")
	}
	if fx.Filepath != "Serum.vst3" {
		t.Errorf("Filepath = %q, want %q", fx.Filepath, "Serum.vst3")
	}
	// Spaces and tabs vanish from the payload, the newline stays.
	if fx.Data != "AAAABBBB\nCCCC" {
		t.Errorf("Data = %q, want %q", fx.Data, "AAAABBBB\nCCCC")
	}
}

func TestChainJSEntry(t *testing.T) {
	chain := parseOneChain(t, `      <JS utility/volume ""
        	0.000000 - mix
      >
`)

	if len(chain) != 1 {
		t.Fatalf("len(chain) = %d, want 1", len(chain))
	}
	fx := chain[0]

	if fx.Type != types.FXJS {
		t.Errorf("Type = %v, want %v", fx.Type, types.FXJS)
	}
	if fx.Name != "utility/volume" {
		t.Errorf("Name = %q, want %q", fx.Name, "utility/volume")
	}
	if fx.Filepath != "" {
		t.Errorf("Filepath = %q, want empty", fx.Filepath)
	}
	// Only the leading run of spaces goes; the tab and inner spaces stay.
	if fx.Data != "\t0.000000 - mix" {
		t.Errorf("Data = %q, want %q", fx.Data, "\t0.000000 - mix")
	}
}

func TestChainUnknownTagKept(t *testing.T) {
	chain := parseOneChain(t, `      <CLAP "CLAP: Surge XT" surge.clap 0 ""
        AAAA
      >
`)

	if len(chain) != 1 {
		t.Fatalf("len(chain) = %d, want 1", len(chain))
	}
	if chain[0].Type != types.FXUndefined {
		t.Errorf("Type = %v, want %v", chain[0].Type, types.FXUndefined)
	}
	if chain[0].Name != "CLAP: Surge XT" {
		t.Errorf("Name = %q, want %q", chain[0].Name, "CLAP: Surge XT")
	}
}

func TestChainSkipsStateLines(t *testing.T) {
	chain := parseOneChain(t, `      WNDRECT 0 66 912 239
      SHOW 0
      LASTSEL 0
      DOCKED 0
`)

	if len(chain) != 0 {
		t.Errorf("len(chain) = %d, want 0", len(chain))
	}
}

func TestChainFileOrder(t *testing.T) {
	chain := parseOneChain(t, `      <VST "VST: ReaComp" reacomp.dll 0 ""
        AAAA
      >
      <JS utility/limiter ""
        0.0
      >
      <AU "AU: MatrixReverb" "" 0 ""
        BBBB
      >
`)

	if len(chain) != 3 {
		t.Fatalf("len(chain) = %d, want 3", len(chain))
	}
	want := []types.FXType{types.FXVST, types.FXJS, types.FXAU}
	for i, typ := range want {
		if chain[i].Type != typ {
			t.Errorf("chain[%d].Type = %v, want %v", i, chain[i].Type, typ)
		}
	}
}
