package locale

import (
	"fmt"
	"time"
)

// DateFormat 日期展示格式
type DateFormat string

const (
	DateDefault DateFormat = "default"
	DateDot     DateFormat = "dot"
	DateShort   DateFormat = "short"
	DateISO     DateFormat = "iso"
	DateChinese DateFormat = "chinese"
)

var italianMonths = [12]string{
	"Gen", "Feb", "Mar", "Apr", "Mag", "Giu",
	"Lug", "Ago", "Set", "Ott", "Nov", "Dic",
}

// FormatDate renders t in one of the site date formats. Unknown formats use
// the default "02 Gen, 2006" layout. Only iso converts to UTC first.
func FormatDate(t time.Time, format DateFormat) string {
	switch format {
	case DateDot:
		return t.Format("2006.01.02")
	case DateISO:
		return t.UTC().Format("2006-01-02")
	case DateChinese:
		return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
	default:
		return fmt.Sprintf("%02d %s, %d", t.Day(), italianMonths[t.Month()-1], t.Year())
	}
}
