package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyURLLabel          = "url_label"
	KeyEnterURL          = "enter_url"
	KeyLoad              = "load"
	KeyPreview           = "preview"
	KeyPreviewEmpty      = "preview_empty"
	KeyPreviewLoading    = "preview_loading"
	KeyPreviewFailed     = "preview_failed"
	KeyOpenInBrowser     = "open_in_browser"
	KeyUploader          = "uploader"
	KeyDuration          = "duration"
	KeyVideos            = "videos"
	KeyMoreEntries       = "more_entries"
	KeyDownloadOptions   = "download_options"
	KeyFullVideo         = "full_video"
	KeyPartialVideo      = "partial_video"
	KeyStartTime         = "start_time"
	KeyEndTime           = "end_time"
	KeyFormatOptions     = "format_options"
	KeyDownload          = "download"
	KeyStartingDownload  = "starting_download"
	KeyDownloadSucceeded = "download_succeeded"
	KeyDownloadFailed    = "download_failed"
	KeyError             = "error"
	KeySuccess           = "success"
	KeyInvalidURL        = "invalid_url"
	KeyPleaseEnterURL    = "please_enter_url"
	KeySelectFormat      = "select_format"
	KeyInvalidTime       = "invalid_time"
	KeyRangeOrder        = "range_order"
	KeyAlreadyRunning    = "already_running"
	KeyLaunchFailed      = "launch_failed"
	KeyErrorOpeningDir   = "error_opening_dir"
	KeyDownloadDirectory = "download_directory"
	KeyYtDlpPath         = "ytdlp_path"
	KeyPreviewTimeout    = "preview_timeout"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
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

// SetLanguage sets the current language
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
		KeyAppTitle:          "YT Clipper",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyURLLabel:          "YouTube URL:",
		KeyEnterURL:          "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeyLoad:              "Load",
		KeyPreview:           "Preview",
		KeyPreviewEmpty:      "Load a URL to see the video details",
		KeyPreviewLoading:    "Loading…",
		KeyPreviewFailed:     "Could not load preview",
		KeyOpenInBrowser:     "Open in browser",
		KeyUploader:          "Uploader",
		KeyDuration:          "Duration",
		KeyVideos:            "Videos",
		KeyMoreEntries:       "and %d more",
		KeyDownloadOptions:   "Download Options",
		KeyFullVideo:         "Full Video",
		KeyPartialVideo:      "Partial Video",
		KeyStartTime:         "Start time (HH:MM:SS):",
		KeyEndTime:           "End time (HH:MM:SS):",
		KeyFormatOptions:     "Format Options",
		KeyDownload:          "Download",
		KeyStartingDownload:  "Starting download...",
		KeyDownloadSucceeded: "Download completed successfully!",
		KeyDownloadFailed:    "Download failed. Check URL or dependencies.",
		KeyError:             "Error",
		KeySuccess:           "Success",
		KeyInvalidURL:        "Please enter a valid YouTube URL",
		KeyPleaseEnterURL:    "Please enter a YouTube URL",
		KeySelectFormat:      "Please select at least one format",
		KeyInvalidTime:       "Invalid time format. Use HH:MM:SS or MM:SS",
		KeyRangeOrder:        "End time must be after start time",
		KeyAlreadyRunning:    "A download is already in progress",
		KeyLaunchFailed:      "Could not start yt-dlp",
		KeyErrorOpeningDir:   "Error opening folder",
		KeyDownloadDirectory: "Download Directory",
		KeyYtDlpPath:         "yt-dlp Executable",
		KeyPreviewTimeout:    "Preview Timeout (seconds)",
		KeyAutoReveal:        "Open folder after download",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Клиппер",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyURLLabel:          "URL YouTube:",
		KeyEnterURL:          "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeyLoad:              "Загрузить",
		KeyPreview:           "Предпросмотр",
		KeyPreviewEmpty:      "Загрузите URL, чтобы увидеть сведения о видео",
		KeyPreviewLoading:    "Загрузка…",
		KeyPreviewFailed:     "Не удалось загрузить предпросмотр",
		KeyOpenInBrowser:     "Открыть в браузере",
		KeyUploader:          "Автор",
		KeyDuration:          "Длительность",
		KeyVideos:            "Видео",
		KeyMoreEntries:       "и ещё %d",
		KeyDownloadOptions:   "Параметры загрузки",
		KeyFullVideo:         "Всё видео",
		KeyPartialVideo:      "Фрагмент",
		KeyStartTime:         "Начало (ЧЧ:ММ:СС):",
		KeyEndTime:           "Конец (ЧЧ:ММ:СС):",
		KeyFormatOptions:     "Форматы",
		KeyDownload:          "Скачать",
		KeyStartingDownload:  "Начинаем загрузку...",
		KeyDownloadSucceeded: "Загрузка успешно завершена!",
		KeyDownloadFailed:    "Загрузка не удалась. Проверьте URL или зависимости.",
		KeyError:             "Ошибка",
		KeySuccess:           "Готово",
		KeyInvalidURL:        "Введите корректный URL YouTube",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL YouTube",
		KeySelectFormat:      "Выберите хотя бы один формат",
		KeyInvalidTime:       "Неверный формат времени. Используйте ЧЧ:ММ:СС или ММ:СС",
		KeyRangeOrder:        "Конец должен быть позже начала",
		KeyAlreadyRunning:    "Загрузка уже выполняется",
		KeyLaunchFailed:      "Не удалось запустить yt-dlp",
		KeyErrorOpeningDir:   "Ошибка открытия папки",
		KeyDownloadDirectory: "Папка загрузки",
		KeyYtDlpPath:         "Исполняемый файл yt-dlp",
		KeyPreviewTimeout:    "Тайм-аут предпросмотра (сек)",
		KeyAutoReveal:        "Открывать папку после загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT Clipper",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyURLLabel:          "URL do YouTube:",
		KeyEnterURL:          "Digite URL do YouTube (https://youtube.com/watch?v=...)",
		KeyLoad:              "Carregar",
		KeyPreview:           "Pré-visualização",
		KeyPreviewEmpty:      "Carregue uma URL para ver os detalhes do vídeo",
		KeyPreviewLoading:    "Carregando…",
		KeyPreviewFailed:     "Não foi possível carregar a pré-visualização",
		KeyOpenInBrowser:     "Abrir no navegador",
		KeyUploader:          "Autor",
		KeyDuration:          "Duração",
		KeyVideos:            "Vídeos",
		KeyMoreEntries:       "e mais %d",
		KeyDownloadOptions:   "Opções de Download",
		KeyFullVideo:         "Vídeo Completo",
		KeyPartialVideo:      "Trecho do Vídeo",
		KeyStartTime:         "Início (HH:MM:SS):",
		KeyEndTime:           "Fim (HH:MM:SS):",
		KeyFormatOptions:     "Formatos",
		KeyDownload:          "Baixar",
		KeyStartingDownload:  "Iniciando download...",
		KeyDownloadSucceeded: "Download concluído com sucesso!",
		KeyDownloadFailed:    "Falha no download. Verifique a URL ou as dependências.",
		KeyError:             "Erro",
		KeySuccess:           "Sucesso",
		KeyInvalidURL:        "Digite uma URL do YouTube válida",
		KeyPleaseEnterURL:    "Por favor, digite uma URL do YouTube",
		KeySelectFormat:      "Selecione pelo menos um formato",
		KeyInvalidTime:       "Formato de tempo inválido. Use HH:MM:SS ou MM:SS",
		KeyRangeOrder:        "O fim deve ser depois do início",
		KeyAlreadyRunning:    "Um download já está em andamento",
		KeyLaunchFailed:      "Não foi possível iniciar o yt-dlp",
		KeyErrorOpeningDir:   "Erro ao abrir pasta",
		KeyDownloadDirectory: "Diretório de Download",
		KeyYtDlpPath:         "Executável do yt-dlp",
		KeyPreviewTimeout:    "Tempo Limite da Pré-visualização (s)",
		KeyAutoReveal:        "Abrir pasta após o download",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
