package label

import (
	"fmt"
	"github.com/lukasz-zimnoch/dexly/custody/formatter"
)

type MaskType int

const (
	MaskPhone MaskType = iota
	MaskNumber
)

func ParseMaskType(value string) (MaskType, error) {
	switch value {
	case "PHONE":
		return MaskPhone, nil
	case "NUMBER":
		return MaskNumber, nil
	}

	return -1, fmt.Errorf("unknown mask type: [%v]", value)
}

func (mt MaskType) Mask() formatter.Mask {
	if mt == MaskPhone {
		return formatter.PhoneMask{}
	}

	return formatter.NumberMask{}
}

type TextLabel interface {
	Text() string
}

type Masker interface {
	ApplyMask(maskType MaskType)
}

type Label struct {
	text string
}

func NewLabel(text string) *Label {
	return &Label{text}
}

func (l *Label) Text() string {
	return l.text
}

// MaskedLabel is a label whose text can be reformatted with a mask.
type MaskedLabel struct {
	*Label
}

func NewMaskedLabel(text string) *MaskedLabel {
	return &MaskedLabel{NewLabel(text)}
}

func (ml *MaskedLabel) ApplyMask(maskType MaskType) {
	masked := formatter.Formatter{Mask: maskType.Mask()}
	ml.text = masked.Format(ml.text)
}
