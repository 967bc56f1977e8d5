package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// LanguageSystem selects the language from the OS locale
const LanguageSystem = "system"

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyFile                 = "file"
	KeyVideo                = "video"
	KeyLoad                 = "load"
	KeyConvertTo            = "convert_to"
	KeyQuit                 = "quit"
	KeySettings             = "settings"
	KeyLanguage             = "language"
	KeySystemDefault        = "system_default"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeyCancelling           = "cancelling"
	KeyBrowse               = "browse"
	KeyYes                  = "yes"
	KeyNo                   = "no"
	KeyPlay                 = "play"
	KeyReveal               = "reveal"
	KeyInformation          = "information"
	KeyWarning              = "warning"
	KeyError                = "error"
	KeyProgressTitle        = "progress_title"
	KeyProgressBody         = "progress_body"
	KeyProgressDetail       = "progress_detail"
	KeyProgressDone         = "progress_done"
	KeyLoadConvertedTitle   = "load_converted_title"
	KeyLoadConvertedMessage = "load_converted_message"
	KeyOverwriteTitle       = "overwrite_title"
	KeyOverwriteMessage     = "overwrite_message"
	KeyNoVideo              = "no_video"
	KeyReadingVideo         = "reading_video"
	KeyPreviewUnavailable   = "preview_unavailable"
	KeyErrorOpeningFile     = "error_opening_file"
	KeyFFmpegPath           = "ffmpeg_path"
	KeyFFprobePath          = "ffprobe_path"
	KeyAutomaticLookup      = "automatic_lookup"
	KeyRevealAfterConvert   = "reveal_after_convert"
	KeySettingsSaved        = "settings_saved"
	KeyToolsRestartHint     = "tools_restart_hint"

	KeyNoticeUnsupportedPlayback = "notice_unsupported_playback"
	KeyNoticeUnsupportedInput    = "notice_unsupported_input"
	KeyNoticeMultipleSelection   = "notice_multiple_selection"
	KeyNoticeSpawnFailed         = "notice_spawn_failed"
	KeyNoticeStartFailed         = "notice_start_failed"
	KeyNoticeConversionFailed    = "notice_conversion_failed"
	KeyNoticeConversionCancelled = "notice_conversion_cancelled"
	KeyNoticeFileGone            = "notice_file_gone"
	KeyNoticeRevealFailed        = "notice_reveal_failed"
)

var supportedLanguages = []language.Tag{
	language.English, // first entry is the matcher fallback
	language.Russian,
	language.Portuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(code string) {
	if code == LanguageSystem || code == "" {
		code = MatchLanguage(systemLocale())
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// MatchLanguage maps a locale such as "pt_BR" or "ru-RU" to the closest
// supported language code
func MatchLanguage(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "en"
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "en"
	}
	base, _ := supportedLanguages[index].Base()
	return base.String()
}

func systemLocale() string {
	return string(lang.SystemLocale())
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "Video Converter",
		KeyFile:                 "File",
		KeyVideo:                "Video",
		KeyLoad:                 "Load…",
		KeyConvertTo:            "Convert to %s…",
		KeyQuit:                 "Quit",
		KeySettings:             "Settings…",
		KeyLanguage:             "Language",
		KeySystemDefault:        "System Default",
		KeySave:                 "Save",
		KeyCancel:               "Cancel",
		KeyCancelling:           "Cancelling…",
		KeyBrowse:               "Browse",
		KeyYes:                  "Yes",
		KeyNo:                   "No",
		KeyPlay:                 "Play",
		KeyReveal:               "Reveal",
		KeyInformation:          "Information",
		KeyWarning:              "Warning",
		KeyError:                "Error",
		KeyProgressTitle:        "Conversion in progress…",
		KeyProgressBody:         "Video conversion in progress…",
		KeyProgressDetail:       "%d%% completed",
		KeyProgressDone:         "Conversion completed.",
		KeyLoadConvertedTitle:   "Conversion completed",
		KeyLoadConvertedMessage: "Conversion to %s format completed. Do you want to load the converted video?",
		KeyOverwriteTitle:       "File exists",
		KeyOverwriteMessage:     "%s already exists. Do you want to replace it?",
		KeyNoVideo:              "Load a video with File › Video › Load…",
		KeyReadingVideo:         "Reading video…",
		KeyPreviewUnavailable:   "No preview available",
		KeyErrorOpeningFile:     "Error opening file",
		KeyFFmpegPath:           "ffmpeg binary",
		KeyFFprobePath:          "ffprobe binary",
		KeyAutomaticLookup:      "Automatic (bundled or PATH)",
		KeyRevealAfterConvert:   "Show converted files in the file manager",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyToolsRestartHint:     "Tool paths take effect after restart.",

		KeyNoticeUnsupportedPlayback: "The %s format cannot be previewed here. You can still convert it.",
		KeyNoticeUnsupportedInput:    "%s is not a supported video file.",
		KeyNoticeMultipleSelection:   "Please select a single video file.",
		KeyNoticeSpawnFailed:         "The converter could not be started.\n\n%s",
		KeyNoticeStartFailed:         "The conversion could not be started.\n\n%s",
		KeyNoticeConversionFailed:    "Conversion to %s format failed.\n\n%s",
		KeyNoticeConversionCancelled: "Conversion to %s format was cancelled.",
		KeyNoticeFileGone:            "%s is no longer available.",
		KeyNoticeRevealFailed:        "Could not show %s.\n\n%s",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "Конвертер видео",
		KeyFile:                 "Файл",
		KeyVideo:                "Видео",
		KeyLoad:                 "Открыть…",
		KeyConvertTo:            "Конвертировать в %s…",
		KeyQuit:                 "Выход",
		KeySettings:             "Настройки…",
		KeyLanguage:             "Язык",
		KeySystemDefault:        "Системный",
		KeySave:                 "Сохранить",
		KeyCancel:               "Отмена",
		KeyCancelling:           "Отмена…",
		KeyBrowse:               "Обзор",
		KeyYes:                  "Да",
		KeyNo:                   "Нет",
		KeyPlay:                 "Воспроизвести",
		KeyReveal:               "Показать в папке",
		KeyInformation:          "Информация",
		KeyWarning:              "Внимание",
		KeyError:                "Ошибка",
		KeyProgressTitle:        "Идёт конвертация…",
		KeyProgressBody:         "Идёт конвертация видео…",
		KeyProgressDetail:       "Выполнено %d%%",
		KeyProgressDone:         "Конвертация завершена.",
		KeyLoadConvertedTitle:   "Конвертация завершена",
		KeyLoadConvertedMessage: "Конвертация в формат %s завершена. Открыть полученное видео?",
		KeyOverwriteTitle:       "Файл существует",
		KeyOverwriteMessage:     "%s уже существует. Заменить его?",
		KeyNoVideo:              "Откройте видео: Файл › Видео › Открыть…",
		KeyReadingVideo:         "Чтение видео…",
		KeyPreviewUnavailable:   "Предпросмотр недоступен",
		KeyErrorOpeningFile:     "Ошибка открытия файла",
		KeyFFmpegPath:           "Программа ffmpeg",
		KeyFFprobePath:          "Программа ffprobe",
		KeyAutomaticLookup:      "Автоматически (из комплекта или PATH)",
		KeyRevealAfterConvert:   "Показывать готовые файлы в файловом менеджере",
		KeySettingsSaved:        "Настройки успешно сохранены!",
		KeyToolsRestartHint:     "Пути к программам применяются после перезапуска.",

		KeyNoticeUnsupportedPlayback: "Формат %s нельзя просмотреть здесь. Конвертация по-прежнему доступна.",
		KeyNoticeUnsupportedInput:    "%s не является поддерживаемым видеофайлом.",
		KeyNoticeMultipleSelection:   "Выберите один видеофайл.",
		KeyNoticeSpawnFailed:         "Не удалось запустить конвертер.\n\n%s",
		KeyNoticeStartFailed:         "Не удалось начать конвертацию.\n\n%s",
		KeyNoticeConversionFailed:    "Ошибка конвертации в формат %s.\n\n%s",
		KeyNoticeConversionCancelled: "Конвертация в формат %s отменена.",
		KeyNoticeFileGone:            "Файл %s больше недоступен.",
		KeyNoticeRevealFailed:        "Не удалось показать %s.\n\n%s",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "Conversor de Vídeo",
		KeyFile:                 "Arquivo",
		KeyVideo:                "Vídeo",
		KeyLoad:                 "Abrir…",
		KeyConvertTo:            "Converter para %s…",
		KeyQuit:                 "Sair",
		KeySettings:             "Configurações…",
		KeyLanguage:             "Idioma",
		KeySystemDefault:        "Padrão do Sistema",
		KeySave:                 "Salvar",
		KeyCancel:               "Cancelar",
		KeyCancelling:           "Cancelando…",
		KeyBrowse:               "Navegar",
		KeyYes:                  "Sim",
		KeyNo:                   "Não",
		KeyPlay:                 "Reproduzir",
		KeyReveal:               "Mostrar na pasta",
		KeyInformation:          "Informação",
		KeyWarning:              "Aviso",
		KeyError:                "Erro",
		KeyProgressTitle:        "Conversão em andamento…",
		KeyProgressBody:         "Conversão de vídeo em andamento…",
		KeyProgressDetail:       "%d%% concluído",
		KeyProgressDone:         "Conversão concluída.",
		KeyLoadConvertedTitle:   "Conversão concluída",
		KeyLoadConvertedMessage: "A conversão para o formato %s foi concluída. Deseja abrir o vídeo convertido?",
		KeyOverwriteTitle:       "O arquivo já existe",
		KeyOverwriteMessage:     "%s já existe. Deseja substituí-lo?",
		KeyNoVideo:              "Abra um vídeo em Arquivo › Vídeo › Abrir…",
		KeyReadingVideo:         "Lendo vídeo…",
		KeyPreviewUnavailable:   "Pré-visualização indisponível",
		KeyErrorOpeningFile:     "Erro ao abrir arquivo",
		KeyFFmpegPath:           "Programa ffmpeg",
		KeyFFprobePath:          "Programa ffprobe",
		KeyAutomaticLookup:      "Automático (incluído ou PATH)",
		KeyRevealAfterConvert:   "Mostrar arquivos convertidos no gerenciador de arquivos",
		KeySettingsSaved:        "Configurações salvas com sucesso!",
		KeyToolsRestartHint:     "Os caminhos dos programas valem após reiniciar.",

		KeyNoticeUnsupportedPlayback: "O formato %s não pode ser pré-visualizado aqui. A conversão continua disponível.",
		KeyNoticeUnsupportedInput:    "%s não é um arquivo de vídeo suportado.",
		KeyNoticeMultipleSelection:   "Selecione um único arquivo de vídeo.",
		KeyNoticeSpawnFailed:         "Não foi possível iniciar o conversor.\n\n%s",
		KeyNoticeStartFailed:         "Não foi possível iniciar a conversão.\n\n%s",
		KeyNoticeConversionFailed:    "A conversão para o formato %s falhou.\n\n%s",
		KeyNoticeConversionCancelled: "A conversão para o formato %s foi cancelada.",
		KeyNoticeFileGone:            "%s não está mais disponível.",
		KeyNoticeRevealFailed:        "Não foi possível mostrar %s.\n\n%s",
	}
}
