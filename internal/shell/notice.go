package shell

import "github.com/ytget/video-converter/internal/model"

// NoticeKind tells the UI how prominent a notice is
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarning
	NoticeError
)

// NoticeCode identifies the message to show; the UI localizes it
type NoticeCode string

const (
	NoticeUnsupportedPlayback NoticeCode = "unsupported_playback"
	NoticeUnsupportedInput    NoticeCode = "unsupported_input"
	NoticeMultipleSelection   NoticeCode = "multiple_selection"
	NoticeSpawnFailed         NoticeCode = "spawn_failed"
	NoticeStartFailed         NoticeCode = "start_failed"
	NoticeConversionFailed    NoticeCode = "conversion_failed"
	NoticeConversionCancelled NoticeCode = "conversion_cancelled"
	NoticeFileGone            NoticeCode = "file_gone"
	NoticeRevealFailed        NoticeCode = "reveal_failed"
)

// Notice is a user-facing message emitted by the shell
type Notice struct {
	Kind   NoticeKind
	Code   NoticeCode
	Path   string
	Format model.Format
	Detail string
}

// Question is a yes/no prompt
type Question struct {
	Code   QuestionCode
	Path   string
	Format model.Format
}

// QuestionCode identifies a prompt; the UI localizes it
type QuestionCode string

const (
	QuestionLoadConverted QuestionCode = "load_converted"
	QuestionOverwrite     QuestionCode = "overwrite"
)
