package services

import (
	"fmt"
	"time"
)

// EnglishFormatter renders notifications like
// "New appointment from Ana on Monday, May 13 at 14:00".
type EnglishFormatter struct{}

func (EnglishFormatter) NewAppointment(clientName string, slot time.Time) string {
	return fmt.Sprintf("New appointment from %s on %s", clientName, slot.Format("Monday, January 2 at 15:04"))
}

var ptWeekdays = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}

var ptMonths = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}

// PortugueseFormatter renders notifications like
// "Novo agendamento de Ana para dia 13 de maio, às 14:00h".
type PortugueseFormatter struct{}

func (PortugueseFormatter) NewAppointment(clientName string, slot time.Time) string {
	return fmt.Sprintf("Novo agendamento de %s para %s, dia %d de %s, às %sh",
		clientName, ptWeekdays[slot.Weekday()], slot.Day(), ptMonths[slot.Month()-1], slot.Format("15:04"))
}

// FormatterFor picks a formatter by language tag, defaulting to English.
func FormatterFor(lang string) NotificationFormatter {
	switch lang {
	case "pt", "pt-BR", "pt_BR":
		return PortugueseFormatter{}
	default:
		return EnglishFormatter{}
	}
}
