// Package ffprobe inspects media containers through the ffprobe binary and
// exposes the stream and format metadata the pipeline needs: container
// duration and source video geometry.
package ffprobe
