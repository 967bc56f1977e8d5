package model

// Profile holds the encoder arguments used for one output format
type Profile struct {
	VideoCodec string   `yaml:"video_codec"`
	AudioCodec string   `yaml:"audio_codec"`
	ExtraArgs  []string `yaml:"extra_args"`
}

// Args returns the ffmpeg output arguments for the profile
func (p Profile) Args() []string {
	var args []string
	if p.VideoCodec != "" {
		args = append(args, "-c:v", p.VideoCodec)
	}
	if p.AudioCodec != "" {
		args = append(args, "-c:a", p.AudioCodec)
	}
	return append(args, p.ExtraArgs...)
}
