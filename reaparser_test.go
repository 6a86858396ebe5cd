package reaparser_test

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/s95rob/ReaParser"
)

const sessionDoc = `<REAPER_PROJECT 0.1 "6.12/win64" 1209145978
  TEMPO 110 4 4
  SAMPLERATE 44100 0 0
  MASTER_NCH 2 2
  MASTER_VOLUME 1 0 -1 -1 1
  <TRACK {EBE63AE8-7441-4F58-B136-E51922F80C31}
    NAME "Drums"
    VOLPAN 0.5 0 -1 -1 1
    MUTESOLO 1 0 0
    IPHASE 1
    <FXCHAIN
      BYPASS 0 0 0
      <VST3i "VST3i: Serum" Serum.vst3 0 ""
        AAAABBBB
      >
      WAK 0 0
    >
    <ITEM
      POSITION 2.5
      LENGTH 8.25
      MUTE 0 0
      NAME "drum loop"
      VOLPAN 1 0 1 -1
      <SOURCE WAVE
        FILE "loop.wav" 0
      >
    >
    <ITEM
      POSITION 0
      LENGTH 4
      MUTE 1 0
      NAME "keys"
      VOLPAN 1 0 1 -1
      <SOURCE MIDI
        HASDATA 1 960 QN
      >
    >
  >
  <TRACK {B7C2E44D-0D3A-4A0C-8BF4-27E5F1F611D4}
    NAME "Bass"
    VOLPAN 1 -0.5 -1 -1 1
  >
>`

// createTestProject writes doc to a temp .rpp file and returns its path.
func createTestProject(t *testing.T, name, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_Session(t *testing.T) {
	path := createTestProject(t, "Session.rpp", sessionDoc)

	project, err := reaparser.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if project.Name != "Session" {
		t.Errorf("Name = %q, want %q", project.Name, "Session")
	}
	if project.Version.Major != 6 || project.Version.Minor != 12 {
		t.Errorf("Version = %d.%d, want 6.12", project.Version.Major, project.Version.Minor)
	}
	if project.Version.Platform != reaparser.PlatformWindows {
		t.Errorf("Platform = %v, want %v", project.Version.Platform, reaparser.PlatformWindows)
	}
	if project.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", project.SampleRate)
	}
	if project.Tempo.BPM != 110 {
		t.Errorf("Tempo.BPM = %v, want 110", project.Tempo.BPM)
	}

	if len(project.Tracks) != 3 {
		t.Fatalf("len(Tracks) = %d, want 3", len(project.Tracks))
	}
	if !project.Tracks[0].IsMaster() {
		t.Error("Tracks[0] is not the master track")
	}

	drums := project.Tracks[1]
	if drums.Name != "Drums" || drums.NumericID != 1 {
		t.Errorf("Tracks[1] = %q id %d, want Drums id 1", drums.Name, drums.NumericID)
	}
	// Amplitude 0.5 in decibels by default.
	if math.Abs(drums.Volume-(-6.0206)) > 1e-3 {
		t.Errorf("Tracks[1].Volume = %v, want about -6.0206 dB", drums.Volume)
	}
	if !drums.Muted || !drums.PhaseInverted {
		t.Errorf("Tracks[1] Muted/PhaseInverted = %v/%v, want true/true", drums.Muted, drums.PhaseInverted)
	}

	if len(drums.FXChain) != 1 {
		t.Fatalf("len(FXChain) = %d, want 1", len(drums.FXChain))
	}
	if drums.FXChain[0].Type != reaparser.FXVST3i {
		t.Errorf("FXChain[0].Type = %v, want %v", drums.FXChain[0].Type, reaparser.FXVST3i)
	}

	if len(drums.MediaItems) != 2 {
		t.Fatalf("len(MediaItems) = %d, want 2", len(drums.MediaItems))
	}
	for i, item := range drums.MediaItems {
		if item.End != item.Start+item.Length {
			t.Errorf("MediaItems[%d].End = %v, want Start+Length = %v",
				i, item.End, item.Start+item.Length)
		}
	}
	if drums.MediaItems[0].Filepath != "loop.wav" {
		t.Errorf("MediaItems[0].Filepath = %q, want %q", drums.MediaItems[0].Filepath, "loop.wav")
	}
	if drums.MediaItems[0].Type != reaparser.MediaSample {
		t.Errorf("MediaItems[0].Type = %v, want %v", drums.MediaItems[0].Type, reaparser.MediaSample)
	}
	if drums.MediaItems[1].Filepath != "" {
		t.Errorf("MediaItems[1].Filepath = %q, want empty for MIDI", drums.MediaItems[1].Filepath)
	}
	if drums.MediaItems[1].Type != reaparser.MediaMidi {
		t.Errorf("MediaItems[1].Type = %v, want %v", drums.MediaItems[1].Type, reaparser.MediaMidi)
	}
}

func TestOpen_UnitOptions(t *testing.T) {
	path := createTestProject(t, "Units.rpp", sessionDoc)

	project, err := reaparser.Open(path,
		reaparser.WithRawVolume(),
		reaparser.WithPanPercent(),
	)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	drums := project.Tracks[1]
	if drums.Volume != 0.5 {
		t.Errorf("Volume = %v, want raw amplitude 0.5", drums.Volume)
	}
	bass := project.Tracks[2]
	if bass.Pan != -50 {
		t.Errorf("Pan = %v, want -50 percent", bass.Pan)
	}
}

func TestOpen_MissingSampleRate(t *testing.T) {
	path := createTestProject(t, "NoRate.rpp", "<REAPER_PROJECT 0.1 \"6.12/win64\" 1\n>")

	project, err := reaparser.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if project.SampleRate != 0 {
		t.Errorf("SampleRate = %d, want 0", project.SampleRate)
	}
	if len(project.Tracks) != 1 || !project.Tracks[0].IsMaster() {
		t.Errorf("Tracks = %+v, want just the master", project.Tracks)
	}
}

func TestOpen_BadPath(t *testing.T) {
	project, err := reaparser.Open(filepath.Join(t.TempDir(), "missing.rpp"))
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	if project != nil {
		t.Error("expected nil project on error")
	}

	var openErr *reaparser.OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("error = %T, want *OpenError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("OpenError should wrap the underlying not-exist error")
	}
}

func TestOpen_InvalidHeader(t *testing.T) {
	path := createTestProject(t, "NotAProject.rpp", "hello world\n")

	project, err := reaparser.Open(path)
	if err == nil {
		t.Fatal("expected error for invalid header")
	}
	if project != nil {
		t.Error("expected nil project on error")
	}

	var formatErr *reaparser.InvalidFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("error = %T, want *InvalidFormatError", err)
	}
}

func TestDecode_MatchesOpen(t *testing.T) {
	path := createTestProject(t, "Session.rpp", sessionDoc)

	fromFile, err := reaparser.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Same bytes through a plain, non-seekable reader.
	fromReader, err := reaparser.Decode(strings.NewReader(sessionDoc), path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !reflect.DeepEqual(fromFile, fromReader) {
		t.Errorf("Decode result differs from Open result:\nopen:   %+v\ndecode: %+v", fromFile, fromReader)
	}
}

func TestDecode_EmptyPath(t *testing.T) {
	project, err := reaparser.Decode(strings.NewReader(sessionDoc), "")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if project.Name != "" {
		t.Errorf("Name = %q, want empty without a path", project.Name)
	}
}
