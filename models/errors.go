package models

import "errors"

// Stock and transfer errors surfaced to the UI. The Arabic messages are the
// user-facing text; callers pick the status code from the sentinel.
var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnknownOwner      = errors.New("unknown owner")
	ErrUnknownItemType   = errors.New("unknown item type")
	ErrSameOwner         = errors.New("source and destination are the same")
)

// ArabicMessage maps a stock error to the message shown in the UI.
func ArabicMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidQuantity):
		return "الكمية المطلوبة غير صالحة"
	case errors.Is(err, ErrInsufficientStock):
		return "الكمية المطلوبة غير متوفرة في المخزون"
	case errors.Is(err, ErrUnknownOwner):
		return "الجهة المحددة غير موجودة"
	case errors.Is(err, ErrUnknownItemType):
		return "نوع الصنف غير موجود"
	case errors.Is(err, ErrSameOwner):
		return "لا يمكن التحويل إلى نفس الجهة"
	default:
		return "حدث خطأ أثناء حفظ البيانات"
	}
}
