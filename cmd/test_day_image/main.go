package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
)

func main() {
	// Создаем тестовые данные
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	names := []string{"Jane Doe", "John Smith", "Maria Garcia", "Wei Zhang", "Olga Ivanova"}

	morning := make([]model.AttendanceRecord, 0, len(names))
	afternoon := make([]model.AttendanceRecord, 0, len(names)-2)
	for i, name := range names {
		morning = append(morning, model.AttendanceRecord{
			FullName:    name,
			Status:      model.AttendanceStatuses[i%len(model.AttendanceStatuses)],
			DateTime:    model.NewTimeOfDay(11, i*5).On(day),
			MeetingTime: model.MeetingMorning,
		})
		if i < len(names)-2 {
			afternoon = append(afternoon, model.AttendanceRecord{
				FullName:    name,
				Status:      model.AttendanceStatusPresent,
				DateTime:    model.NewTimeOfDay(16, i*10).On(day),
				MeetingTime: model.MeetingAfternoon,
			})
		}
	}

	attendance := &service.DayAttendance{
		Date: day,
		Slots: []service.SlotAttendance{
			{Meeting: model.MeetingMorning, Records: morning},
			{Meeting: model.MeetingAfternoon, Records: afternoon},
		},
	}

	// Генерируем изображение
	imageData, err := common.GenerateDayImage(attendance)
	if err != nil {
		fmt.Printf("Failed to render image: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "attendance.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Failed to save file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Image saved to %s\n", filename)
	fmt.Printf("📅 Date: %s\n", day.Format("2006-01-02"))
	fmt.Printf("📊 Records: %d + %d\n", len(morning), len(afternoon))
}
