package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/vidterm/vidterm/internal/process"
)

// ErrNoPlayer is returned when neither aplay nor play is installed.
var ErrNoPlayer = errors.New("no audio player found: install aplay or play")

// lookPath is stubbed in tests.
var lookPath = exec.LookPath

// playerCommand builds the playback child. Both candidates read a WAV
// stream on stdin; aplay is preferred when both are installed.
func playerCommand() (*exec.Cmd, error) {
	if path, err := lookPath("aplay"); err == nil {
		return exec.Command(path, "--quiet"), nil
	}
	if path, err := lookPath("play"); err == nil {
		return exec.Command(path, "-q", "-t", "wav", "-"), nil
	}
	return nil, ErrNoPlayer
}

// Available reports whether a playback tool is installed.
func Available() bool {
	_, err := playerCommand()
	return err == nil
}

// extractArgs builds the ffmpeg arguments for pulling the audio track out
// of input in the given output format.
func extractArgs(input string, remote bool, format string) []string {
	args := []string{"-nostdin"}
	if remote {
		args = append(args,
			"-reconnect", "1",
			"-reconnect_streamed", "1",
			"-reconnect_delay_max", "5",
		)
	}
	return append(args,
		"-i", input,
		"-loglevel", "error",
		"-vn",
		"-f", format,
		"pipe:1",
	)
}

// Player is a supervised extractor and playback pair. Pausing suspends
// both children so the soundtrack holds position while the display
// catches up.
type Player struct {
	extract *process.Process
	play    *process.Process
}

// StartSource begins soundtrack playback for a local path or remote URL.
func StartSource(sup *process.Supervisor, input string, remote bool) (*Player, error) {
	return start(sup, exec.Command("ffmpeg", extractArgs(input, remote, "wav")...))
}

// StartReader begins playback of an encoded audio blob, such as the track
// embedded in a container file.
func StartReader(sup *process.Supervisor, r io.Reader) (*Player, error) {
	cmd := exec.Command("ffmpeg",
		"-i", "-",
		"-loglevel", "error",
		"-vn",
		"-f", "wav",
		"pipe:1",
	)
	cmd.Stdin = r
	return start(sup, cmd)
}

// start launches the extractor and feeds its WAV output into a player.
func start(sup *process.Supervisor, extractCmd *exec.Cmd) (*Player, error) {
	playCmd, err := playerCommand()
	if err != nil {
		return nil, err
	}

	extract, err := sup.Start("audio-extractor", extractCmd)
	if err != nil {
		return nil, fmt.Errorf("start audio extractor: %w", err)
	}

	playCmd.Stdin = extract.Stdout
	play, err := sup.Start("audio-player", playCmd)
	if err != nil {
		_ = extract.Kill()
		return nil, fmt.Errorf("start audio player: %w", err)
	}

	return &Player{extract: extract, play: play}, nil
}

// Pause suspends playback while the display is buffering.
func (p *Player) Pause() error {
	_ = p.extract.Pause()
	return p.play.Pause()
}

// Resume continues a paused soundtrack.
func (p *Player) Resume() error {
	_ = p.extract.Resume()
	return p.play.Resume()
}

// Stop kills both children. Exited children are ignored.
func (p *Player) Stop() {
	_ = p.play.Kill()
	_ = p.extract.Kill()
}

// Extract starts an ffmpeg child emitting the input's audio track as an
// encoded MP3 stream on stdout, used when writing container files.
func Extract(sup *process.Supervisor, input string, remote bool) (*process.Process, error) {
	proc, err := sup.Start("audio-extractor",
		exec.Command("ffmpeg", extractArgs(input, remote, "mp3")...))
	if err != nil {
		return nil, fmt.Errorf("start audio extractor: %w", err)
	}
	return proc, nil
}

// blankWAV returns a short silent clip used to open the audio device
// before real playback starts.
func blankWAV() []byte {
	const (
		sampleRate = 8000
		samples    = sampleRate / 10
	)
	buf := make([]byte, 44+samples)
	copy(buf, "RIFF")
	binary.LittleEndian.PutUint32(buf[4:], uint32(36+samples))
	copy(buf[8:], "WAVE")
	copy(buf[12:], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:], 16)
	binary.LittleEndian.PutUint16(buf[20:], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:], 1) // mono
	binary.LittleEndian.PutUint32(buf[24:], sampleRate)
	binary.LittleEndian.PutUint32(buf[28:], sampleRate)
	binary.LittleEndian.PutUint16(buf[32:], 1)
	binary.LittleEndian.PutUint16(buf[34:], 8)
	copy(buf[36:], "data")
	binary.LittleEndian.PutUint32(buf[40:], uint32(samples))
	for i := 44; i < len(buf); i++ {
		buf[i] = 0x80 // unsigned 8-bit silence midpoint
	}
	return buf
}

// Prime plays a silent clip so device startup latency lands before the
// first audible sample instead of clipping it.
func Prime(sup *process.Supervisor) error {
	cmd, err := playerCommand()
	if err != nil {
		return err
	}
	proc, err := sup.Start("audio-primer", cmd)
	if err != nil {
		return err
	}
	if _, err := proc.Stdin.Write(blankWAV()); err != nil {
		_ = proc.Kill()
		return err
	}
	_ = proc.Stdin.Close()
	<-proc.Done()
	return nil
}
