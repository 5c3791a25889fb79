// Package timecode converts between the time representations used by the
// subtitle pipeline: SRT timestamps (HH:MM:SS,mmm), ASS timestamps
// (H:MM:SS.CC), and floating-point seconds.
package timecode
