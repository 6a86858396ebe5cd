package rpp

import (
	"testing"

	"github.com/s95rob/ReaParser/internal/types"
)

func parseOneItem(t *testing.T, itemBody string, opts types.Options) types.MediaItem {
	t.Helper()
	doc := "<REAPER_PROJECT 0.1 \"6.12/win64\" 1\n" +
		"  <TRACK {X}\n" +
		"    <ITEM\n" +
		itemBody +
		"    >\n" +
		"  >\n>"
	project := parseDoc(t, doc, opts)
	track := project.Tracks[1]
	if len(track.MediaItems) != 1 {
		t.Fatalf("len(MediaItems) = %d, want 1", len(track.MediaItems))
	}
	return track.MediaItems[0]
}

func TestItemWaveSource(t *testing.T) {
	item := parseOneItem(t, `      POSITION 1.5
      LENGTH 2.5
      MUTE 0 0
      NAME "guitar take"
      VOLPAN 1 0 1 -1
      <SOURCE WAVE
        FILE "takes/guitar.wav" 0
      >
`, rawOptions())

	if item.Type != types.MediaSample {
		t.Errorf("Type = %v, want %v", item.Type, types.MediaSample)
	}
	if item.Filepath != "takes/guitar.wav" {
		t.Errorf("Filepath = %q, want %q", item.Filepath, "takes/guitar.wav")
	}
	if item.Start != 1.5 || item.Length != 2.5 || item.End != 4 {
		t.Errorf("Start/Length/End = %v/%v/%v, want 1.5/2.5/4", item.Start, item.Length, item.End)
	}
	if item.Name != "guitar take" {
		t.Errorf("Name = %q, want %q", item.Name, "guitar take")
	}
}

func TestItemMP3Source(t *testing.T) {
	item := parseOneItem(t, `      <SOURCE MP3
        FILE "bounce.mp3" 0
      >
`, rawOptions())

	if item.Type != types.MediaSample {
		t.Errorf("Type = %v, want %v", item.Type, types.MediaSample)
	}
	if item.Filepath != "bounce.mp3" {
		t.Errorf("Filepath = %q, want %q", item.Filepath, "bounce.mp3")
	}
}

func TestItemMidiSourceHasNoFilepath(t *testing.T) {
	item := parseOneItem(t, `      NAME "midi part"
      <SOURCE MIDI
        HASDATA 1 960 QN
        E 0 90 24 5f
      >
`, rawOptions())

	if item.Type != types.MediaMidi {
		t.Errorf("Type = %v, want %v", item.Type, types.MediaMidi)
	}
	if item.Filepath != "" {
		t.Errorf("Filepath = %q, want empty for MIDI", item.Filepath)
	}
}

// The line after a WAVE marker is consumed whether or not it is a FILE line;
// here it is an unrelated field line, which must not land on the item either.
func TestItemWaveSourceWithoutFile(t *testing.T) {
	item := parseOneItem(t, `      <SOURCE WAVE
        NAME "swallowed"
      >
`, rawOptions())

	if item.Type != types.MediaSample {
		t.Errorf("Type = %v, want %v", item.Type, types.MediaSample)
	}
	if item.Filepath != "" {
		t.Errorf("Filepath = %q, want empty", item.Filepath)
	}
	if item.Name != "" {
		t.Errorf("Name = %q, want empty (consumed line is not re-examined)", item.Name)
	}
}

func TestItemNoSourceMarker(t *testing.T) {
	item := parseOneItem(t, "      POSITION 0\n      LENGTH 1\n", rawOptions())

	if item.Type != types.MediaUndefined {
		t.Errorf("Type = %v, want %v", item.Type, types.MediaUndefined)
	}
}

func TestItemPanPercent(t *testing.T) {
	item := parseOneItem(t, "      VOLPAN 1 0.5 1 -1\n",
		types.Options{ConvertVolumeToDB: false, NormalizePan: false})

	if item.Pan != 50 {
		t.Errorf("Pan = %v, want 50", item.Pan)
	}
}
