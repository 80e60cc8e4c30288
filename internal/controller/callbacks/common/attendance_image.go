package common

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth       = 1000
	headerHeight     = 90
	columnHeader     = 50
	rowHeight        = 34
	minRows          = 3
	paddingX         = 24
	legendHeight     = 60
	chipSize         = 14.0
	rowBorderRadius  = 6.0
	titleScale       = 2.0
	maxNameLen       = 32
	totalMeetingCols = 2
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	textColor       = color.RGBA{80, 85, 90, 220}
	columnBgColor   = color.NRGBA{232, 232, 232, 255}
	evenRowColor    = color.NRGBA{250, 250, 250, 255}
	oddRowColor     = color.NRGBA{240, 240, 240, 255}
	emptyTextColor  = color.RGBA{150, 150, 150, 220}
	legendItemColor = color.RGBA{70, 74, 78, 220}

	presentColor = color.RGBA{133, 193, 85, 230}
	absentColor  = color.RGBA{235, 110, 110, 230}
	offDutyColor = color.RGBA{158, 158, 158, 220}
	onCallColor  = color.RGBA{100, 150, 230, 230}
	unknownColor = color.RGBA{220, 220, 220, 220}
)

// GenerateDayImage рисует сводку посещаемости за день: колонка на каждую встречу
func GenerateDayImage(day *service.DayAttendance) ([]byte, error) {
	if day == nil {
		return nil, fmt.Errorf("generate day image: nil day")
	}

	rows := minRows
	for _, slot := range day.Slots {
		if len(slot.Records) > rows {
			rows = len(slot.Records)
		}
	}

	height := headerHeight + columnHeader + rows*rowHeight + legendHeight
	dc := gg.NewContext(imageWidth, height)
	dc.SetColor(bgColor)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	drawTitle(dc, day)

	colWidth := float64(imageWidth-paddingX*(totalMeetingCols+1)) / totalMeetingCols
	for i, meeting := range model.MeetingTimes {
		x := float64(paddingX) + float64(i)*(colWidth+paddingX)
		drawMeetingColumn(dc, meeting, day.Slot(meeting), x, colWidth, rows)
	}

	drawLegend(dc, float64(height-legendHeight))

	return encodeImage(dc)
}

// drawTitle заголовок с датой
func drawTitle(dc *gg.Context, day *service.DayAttendance) {
	title := "Attendance " + day.Date.Format("Monday, 2006-01-02")

	dc.Push()
	dc.Scale(titleScale, titleScale)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(paddingX)/titleScale, float64(headerHeight)/2/titleScale, 0, 0.5)
	dc.Pop()
}

// drawMeetingColumn колонка одной встречи с отметками
func drawMeetingColumn(dc *gg.Context, meeting model.MeetingTime, records []model.AttendanceRecord, x, width float64, rows int) {
	top := float64(headerHeight)

	dc.SetColor(columnBgColor)
	dc.DrawRoundedRectangle(x, top, width, float64(columnHeader+rows*rowHeight), rowBorderRadius)
	dc.Fill()

	dc.SetColor(textColor)
	header := fmt.Sprintf("%s meeting (%d)", meeting, len(records))
	dc.DrawStringAnchored(header, x+width/2, top+columnHeader/2, 0.5, 0.5)

	if len(records) == 0 {
		dc.SetColor(emptyTextColor)
		dc.DrawStringAnchored("No records", x+width/2, top+columnHeader+rowHeight, 0.5, 0.5)
		return
	}

	for i, rec := range records {
		y := top + columnHeader + float64(i*rowHeight)
		drawRecordRow(dc, rec, i, x, y, width)
	}
}

// drawRecordRow одна строка: цветная метка статуса, имя, время
func drawRecordRow(dc *gg.Context, rec model.AttendanceRecord, idx int, x, y, width float64) {
	if idx%2 == 0 {
		dc.SetColor(evenRowColor)
	} else {
		dc.SetColor(oddRowColor)
	}
	dc.DrawRectangle(x+4, y+2, width-8, rowHeight-4)
	dc.Fill()

	dc.SetColor(statusColor(rec.Status))
	dc.DrawRoundedRectangle(x+12, y+(rowHeight-chipSize)/2, chipSize, chipSize, 3)
	dc.Fill()

	dc.SetColor(textColor)
	dc.DrawStringAnchored(truncate(rec.FullName, maxNameLen), x+12+chipSize+10, y+rowHeight/2, 0, 0.5)
	dc.DrawStringAnchored(rec.DateTime.Format("15:04"), x+width-12, y+rowHeight/2, 1, 0.5)
}

// drawLegend легенда статусов внизу
func drawLegend(dc *gg.Context, top float64) {
	x := float64(paddingX)
	y := top + legendHeight/2

	for _, status := range model.AttendanceStatuses {
		dc.SetColor(statusColor(status))
		dc.DrawRoundedRectangle(x, y-chipSize/2, chipSize, chipSize, 3)
		dc.Fill()

		label := string(status)
		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(label, x+chipSize+8, y, 0, 0.5)
		w, _ := dc.MeasureString(label)
		x += chipSize + 8 + w + 30
	}
}

// statusColor возвращает цвет метки по статусу
func statusColor(status model.AttendanceStatus) color.RGBA {
	switch status {
	case model.AttendanceStatusPresent:
		return presentColor
	case model.AttendanceStatusAbsent:
		return absentColor
	case model.AttendanceStatusOffDuty:
		return offDutyColor
	case model.AttendanceStatusOnCall:
		return onCallColor
	default:
		return unknownColor
	}
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
