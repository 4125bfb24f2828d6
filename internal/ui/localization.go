package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyWidgets          = "widgets"
	KeyLanguage         = "language"
	KeyOpenDataset      = "open_dataset"
	KeyExportCharts     = "export_charts"
	KeyAddWidget        = "add_widget"
	KeyEditWidget       = "edit_widget"
	KeyRemoveWidget     = "remove_widget"
	KeyResetLayout      = "reset_layout"
	KeyResetConfirm     = "reset_confirm"
	KeyTitle            = "title"
	KeyChartType        = "chart_type"
	KeyMetric           = "metric"
	KeyXAxis            = "x_axis"
	KeyYAxis            = "y_axis"
	KeyColorTheme       = "color_theme"
	KeySuggestTitle     = "suggest_title"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeyDataDirectory    = "data_directory"
	KeyStorageBackend   = "storage_backend"
	KeyChartWidth       = "chart_width"
	KeyChartHeight      = "chart_height"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
	KeyNoDataset        = "no_dataset"
	KeyTotalUnits       = "total_units"
	KeyAvgFlowrate      = "avg_flowrate"
	KeyAvgPressure      = "avg_pressure"
	KeyAvgTemperature   = "avg_temperature"
	KeyLastWidget       = "last_widget"
	KeyTitleRequired    = "title_required"
	KeyExported         = "exported"
	KeyErrorLoadingData = "error_loading_data"
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Chemical Equipment Dashboard",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyWidgets:          "Widgets",
		KeyLanguage:         "Language",
		KeyOpenDataset:      "Open Dataset...",
		KeyExportCharts:     "Export Charts",
		KeyAddWidget:        "Add Widget",
		KeyEditWidget:       "Edit Widget",
		KeyRemoveWidget:     "Remove Widget",
		KeyResetLayout:      "Reset Layout",
		KeyResetConfirm:     "Replace all widgets with the default layout?",
		KeyTitle:            "Title",
		KeyChartType:        "Chart Type",
		KeyMetric:           "Metric",
		KeyXAxis:            "X Axis",
		KeyYAxis:            "Y Axis",
		KeyColorTheme:       "Color Theme",
		KeySuggestTitle:     "Suggest",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeyDataDirectory:    "Data Directory",
		KeyStorageBackend:   "Layout Storage",
		KeyChartWidth:       "Chart Width",
		KeyChartHeight:      "Chart Height",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartRequired:  "Storage changes apply after restart.",
		KeyNoDataset:        "No dataset loaded",
		KeyTotalUnits:       "Units",
		KeyAvgFlowrate:      "Avg flowrate",
		KeyAvgPressure:      "Avg pressure",
		KeyAvgTemperature:   "Avg temperature",
		KeyLastWidget:       "At least one widget must remain on the dashboard.",
		KeyTitleRequired:    "Please enter a title",
		KeyExported:         "Charts exported",
		KeyErrorLoadingData: "Error loading dataset",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Панель химического оборудования",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyWidgets:          "Виджеты",
		KeyLanguage:         "Язык",
		KeyOpenDataset:      "Открыть данные...",
		KeyExportCharts:     "Экспорт графиков",
		KeyAddWidget:        "Добавить виджет",
		KeyEditWidget:       "Изменить виджет",
		KeyRemoveWidget:     "Удалить виджет",
		KeyResetLayout:      "Сбросить раскладку",
		KeyResetConfirm:     "Заменить все виджеты раскладкой по умолчанию?",
		KeyTitle:            "Заголовок",
		KeyChartType:        "Тип графика",
		KeyMetric:           "Показатель",
		KeyXAxis:            "Ось X",
		KeyYAxis:            "Ось Y",
		KeyColorTheme:       "Цветовая тема",
		KeySuggestTitle:     "Предложить",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeyDataDirectory:    "Папка данных",
		KeyStorageBackend:   "Хранение раскладки",
		KeyChartWidth:       "Ширина графика",
		KeyChartHeight:      "Высота графика",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartRequired:  "Изменения хранилища вступят в силу после перезапуска.",
		KeyNoDataset:        "Данные не загружены",
		KeyTotalUnits:       "Единиц",
		KeyAvgFlowrate:      "Средний расход",
		KeyAvgPressure:      "Среднее давление",
		KeyAvgTemperature:   "Средняя температура",
		KeyLastWidget:       "На панели должен остаться хотя бы один виджет.",
		KeyTitleRequired:    "Пожалуйста, введите заголовок",
		KeyExported:         "Графики экспортированы",
		KeyErrorLoadingData: "Ошибка загрузки данных",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Painel de Equipamentos Químicos",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyWidgets:          "Widgets",
		KeyLanguage:         "Idioma",
		KeyOpenDataset:      "Abrir Dados...",
		KeyExportCharts:     "Exportar Gráficos",
		KeyAddWidget:        "Adicionar Widget",
		KeyEditWidget:       "Editar Widget",
		KeyRemoveWidget:     "Remover Widget",
		KeyResetLayout:      "Restaurar Layout",
		KeyResetConfirm:     "Substituir todos os widgets pelo layout padrão?",
		KeyTitle:            "Título",
		KeyChartType:        "Tipo de Gráfico",
		KeyMetric:           "Métrica",
		KeyXAxis:            "Eixo X",
		KeyYAxis:            "Eixo Y",
		KeyColorTheme:       "Tema de Cores",
		KeySuggestTitle:     "Sugerir",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeyDataDirectory:    "Diretório de Dados",
		KeyStorageBackend:   "Armazenamento do Layout",
		KeyChartWidth:       "Largura do Gráfico",
		KeyChartHeight:      "Altura do Gráfico",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartRequired:  "Alterações de armazenamento valem após reiniciar.",
		KeyNoDataset:        "Nenhum dado carregado",
		KeyTotalUnits:       "Unidades",
		KeyAvgFlowrate:      "Vazão média",
		KeyAvgPressure:      "Pressão média",
		KeyAvgTemperature:   "Temperatura média",
		KeyLastWidget:       "Pelo menos um widget deve permanecer no painel.",
		KeyTitleRequired:    "Por favor, digite um título",
		KeyExported:         "Gráficos exportados",
		KeyErrorLoadingData: "Erro ao carregar dados",
	}
}
