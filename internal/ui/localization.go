package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLsLabel         = "urls_label"
	KeyURLsPlaceholder   = "urls_placeholder"
	KeyQualityLabel      = "quality_label"
	KeyLocationLabel     = "location_label"
	KeyBrowse            = "browse"
	KeyDownload          = "download"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyEnableSearch      = "enable_search"
	KeySearchLabel       = "search_label"
	KeySearch            = "search"
	KeySummaryTitle      = "summary_title"
	KeyClose             = "close"
	KeyOpenFolder        = "open_folder"
	KeyError             = "error"
	KeyWarning           = "warning"
	KeyNoURLs            = "no_urls"
	KeyNoQuality         = "no_quality"
	KeyNoLocation        = "no_location"
	KeyLocationFailed    = "location_failed"
	KeyEmptyQuery        = "empty_query"
	KeySearchFailed      = "search_failed"
	KeyFFmpegMissing     = "ffmpeg_missing"
	KeyBatchStarted      = "batch_started"
	KeyBatchFinished     = "batch_finished"
	KeyDownloadDirectory = "download_directory"
	KeyMaxParallel       = "max_parallel"
	KeyEngine            = "engine"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
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

// Format returns the localized text for key formatted with args
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YouTube Batch Downloader",
		KeyURLsLabel:         "YouTube URLs (one per line):",
		KeyURLsPlaceholder:   "https://www.youtube.com/watch?v=...",
		KeyQualityLabel:      "Select Quality:",
		KeyLocationLabel:     "Download Location:",
		KeyBrowse:            "Browse",
		KeyDownload:          "Download",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyEnableSearch:      "Enable YouTube Search",
		KeySearchLabel:       "Search YouTube:",
		KeySearch:            "Search",
		KeySummaryTitle:      "Download Summary",
		KeyClose:             "Close",
		KeyOpenFolder:        "Open folder",
		KeyError:             "Error",
		KeyWarning:           "Warning",
		KeyNoURLs:            "Please enter at least one valid YouTube URL.",
		KeyNoQuality:         "Please select a quality.",
		KeyNoLocation:        "Please select a download location.",
		KeyLocationFailed:    "Cannot create the download location",
		KeyEmptyQuery:        "Enter a search query.",
		KeySearchFailed:      "Search failed",
		KeyFFmpegMissing:     "ffmpeg was not found. Audio Only (MP3) needs it to convert audio, so these downloads will probably fail.",
		KeyBatchStarted:      "Downloading %d video(s)...",
		KeyBatchFinished:     "Finished: %d succeeded, %d failed",
		KeyDownloadDirectory: "Default Download Location",
		KeyMaxParallel:       "Max Parallel Downloads (0 = all at once)",
		KeyEngine:            "Download Engine",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YouTube Пакетный Загрузчик",
		KeyURLsLabel:         "Ссылки YouTube (по одной в строке):",
		KeyURLsPlaceholder:   "https://www.youtube.com/watch?v=...",
		KeyQualityLabel:      "Качество:",
		KeyLocationLabel:     "Папка загрузки:",
		KeyBrowse:            "Обзор",
		KeyDownload:          "Скачать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyEnableSearch:      "Включить поиск YouTube",
		KeySearchLabel:       "Поиск YouTube:",
		KeySearch:            "Найти",
		KeySummaryTitle:      "Итоги загрузки",
		KeyClose:             "Закрыть",
		KeyOpenFolder:        "Открыть папку",
		KeyError:             "Ошибка",
		KeyWarning:           "Предупреждение",
		KeyNoURLs:            "Введите хотя бы одну ссылку YouTube.",
		KeyNoQuality:         "Выберите качество.",
		KeyNoLocation:        "Выберите папку загрузки.",
		KeyLocationFailed:    "Не удалось создать папку загрузки",
		KeyEmptyQuery:        "Введите поисковый запрос.",
		KeySearchFailed:      "Ошибка поиска",
		KeyFFmpegMissing:     "ffmpeg не найден. Он нужен для Audio Only (MP3), поэтому загрузки, скорее всего, завершатся ошибкой.",
		KeyBatchStarted:      "Загружается видео: %d...",
		KeyBatchFinished:     "Готово: успешно %d, с ошибкой %d",
		KeyDownloadDirectory: "Папка загрузки по умолчанию",
		KeyMaxParallel:       "Макс. параллельных (0 = все сразу)",
		KeyEngine:            "Движок загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YouTube Batch Downloader",
		KeyURLsLabel:         "URLs do YouTube (uma por linha):",
		KeyURLsPlaceholder:   "https://www.youtube.com/watch?v=...",
		KeyQualityLabel:      "Qualidade:",
		KeyLocationLabel:     "Local de Download:",
		KeyBrowse:            "Navegar",
		KeyDownload:          "Baixar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyEnableSearch:      "Ativar busca no YouTube",
		KeySearchLabel:       "Buscar no YouTube:",
		KeySearch:            "Buscar",
		KeySummaryTitle:      "Resumo dos Downloads",
		KeyClose:             "Fechar",
		KeyOpenFolder:        "Abrir pasta",
		KeyError:             "Erro",
		KeyWarning:           "Aviso",
		KeyNoURLs:            "Digite pelo menos uma URL válida do YouTube.",
		KeyNoQuality:         "Selecione uma qualidade.",
		KeyNoLocation:        "Selecione um local de download.",
		KeyLocationFailed:    "Não foi possível criar o local de download",
		KeyEmptyQuery:        "Digite um termo de busca.",
		KeySearchFailed:      "Falha na busca",
		KeyFFmpegMissing:     "ffmpeg não encontrado. Audio Only (MP3) precisa dele, então esses downloads provavelmente vão falhar.",
		KeyBatchStarted:      "Baixando %d vídeo(s)...",
		KeyBatchFinished:     "Concluído: %d com sucesso, %d com falha",
		KeyDownloadDirectory: "Local de Download Padrão",
		KeyMaxParallel:       "Max Downloads Paralelos (0 = todos)",
		KeyEngine:            "Motor de Download",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
