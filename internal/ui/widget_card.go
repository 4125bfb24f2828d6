package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/chemviz/internal/model"
	"github.com/ytget/chemviz/internal/registry"
)

// WidgetCard shows one configured chart with its edit and remove actions
type WidgetCard struct {
	widget.BaseWidget

	item         model.Widget
	localization *Localization

	titleLabel  *widget.Label
	detailLabel *widget.Label
	chart       *canvas.Image
	editBtn     *widget.Button
	removeBtn   *widget.Button
	openBtn     *widget.Button

	onEdit   func(id int)
	onRemove func(id int)
	onOpen   func(id int)
}

// NewWidgetCard creates a card for w showing img
func NewWidgetCard(w model.Widget, img image.Image, chartSize fyne.Size, localization *Localization) *WidgetCard {
	c := &WidgetCard{item: w, localization: localization}
	c.ExtendBaseWidget(c)

	c.titleLabel = widget.NewLabel("")
	c.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.titleLabel.Truncation = fyne.TextTruncateEllipsis

	c.detailLabel = widget.NewLabel("")
	c.detailLabel.Importance = widget.LowImportance
	c.detailLabel.Truncation = fyne.TextTruncateEllipsis

	c.chart = canvas.NewImageFromImage(img)
	c.chart.FillMode = canvas.ImageFillContain
	c.chart.SetMinSize(chartSize)

	c.editBtn = widget.NewButton(IconEdit, func() {
		if c.onEdit != nil {
			c.onEdit(c.item.ID)
		}
	})
	c.editBtn.Importance = widget.LowImportance

	c.removeBtn = widget.NewButton(IconClose, func() {
		if c.onRemove != nil {
			c.onRemove(c.item.ID)
		}
	})
	c.removeBtn.Importance = widget.LowImportance

	c.openBtn = widget.NewButton(IconOpen, func() {
		if c.onOpen != nil {
			c.onOpen(c.item.ID)
		}
	})
	c.openBtn.Importance = widget.LowImportance

	c.updateLabels()
	return c
}

// SetCallbacks sets the action callbacks
func (c *WidgetCard) SetCallbacks(onEdit, onRemove, onOpen func(id int)) {
	c.onEdit = onEdit
	c.onRemove = onRemove
	c.onOpen = onOpen
}

// WidgetID returns the id of the widget shown
func (c *WidgetCard) WidgetID() int {
	return c.item.ID
}

func (c *WidgetCard) updateLabels() {
	c.titleLabel.SetText(c.item.Title)
	c.detailLabel.SetText(registry.DisplayName(c.item.Metric) + MiddleDotSeparator + c.item.Type.DisplayName())
}

// CreateRenderer implements fyne.Widget
func (c *WidgetCard) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, container.NewHBox(c.openBtn, c.editBtn, c.removeBtn), c.titleLabel)
	body := container.NewBorder(header, c.detailLabel, nil, nil, c.chart)
	return widget.NewSimpleRenderer(widget.NewCard("", "", body))
}
