package main

// cueTrack is what the rewind controller needs from its cue sound: the full
// track contract plus a way to tell when all real audio has been served,
// since a track holds silence at its end rather than stopping itself.
type cueTrack interface {
	Track
	atEnd() bool
}

// rewindController swaps the active track for a short rewind cue. While the
// cue is sounding the render loop scrubs the decorative animations backward;
// once the cue runs out the original track is restored and restarted. The
// underlying tracks' cursor semantics are untouched.
type rewindController struct {
	cue    cueTrack
	saved  Track
	active bool
}

func newRewindController(cue cueTrack) *rewindController {
	return &rewindController{cue: cue}
}

// begin stops the current track, keeps it aside, and starts the cue.
// Returns the track to treat as active from now on. Calling begin during an
// ongoing rewind has no effect.
func (r *rewindController) begin(current Track) (Track, error) {
	if r.active {
		return current, nil
	}
	current.Stop()
	if err := r.cue.Play(); err != nil {
		return current, err
	}
	r.saved = current
	r.active = true
	return r.cue, nil
}

// scrubbing reports whether the cue is still sounding. While true, callers
// step their animation timelines backward each frame.
func (r *rewindController) scrubbing() bool {
	return r.active && r.cue.Playing() && !r.cue.atEnd()
}

// finish stops the cue, restarts the saved track, and returns it as the
// active track again.
func (r *rewindController) finish() (Track, error) {
	restored := r.saved
	r.cue.Stop()
	r.saved = nil
	r.active = false
	return restored, restored.Play()
}
