// Package transcript loads speech-recognition transcript documents and
// renders them as SRT subtitle text.
package transcript
