package converter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// doctorIDNamespace seeds the name-based UUIDs given to records without an id.
var doctorIDNamespace = uuid.MustParse("5b0f3c6e-8f5e-4a8e-9a43-6d1c2b7e90a1")

// DecodeRawDoctors splits an upstream payload into raw records. A payload that
// is not a JSON array yields no records. An element that is not an object
// yields an empty record, which still normalizes to a defaulted doctor.
func DecodeRawDoctors(payload []byte) []dto.RawDoctor {
	var elements []json.RawMessage
	if err := json.Unmarshal(payload, &elements); err != nil {
		return []dto.RawDoctor{}
	}

	raws := make([]dto.RawDoctor, len(elements))
	for i, element := range elements {
		var raw dto.RawDoctor
		if err := json.Unmarshal(element, &raw); err != nil {
			raw = dto.RawDoctor{}
		}
		raws[i] = raw
	}
	return raws
}

// NormalizeDoctors maps raw records to canonical doctors. It never fails and
// never drops a record.
func NormalizeDoctors(raws []dto.RawDoctor) []entity.Doctor {
	doctors := make([]entity.Doctor, len(raws))
	for i := range raws {
		doctors[i] = NormalizeDoctor(i, &raws[i])
	}
	return doctors
}

// NormalizeDoctor maps a single raw record. position is the record's index in
// the payload and only feeds the synthesized id.
func NormalizeDoctor(position int, raw *dto.RawDoctor) entity.Doctor {
	name := strings.TrimSpace(rawText(raw.Name))
	if name == "" {
		name = entity.UnknownDoctorName
	}

	id := strings.TrimSpace(rawText(raw.ID))
	if id == "" {
		id = synthesizeDoctorID(position, name)
	}

	clinicName, location := clinicDetails(raw.Clinic)

	return entity.Doctor{
		ID:              id,
		Name:            name,
		Image:           strings.TrimSpace(rawText(raw.Photo)),
		Specialties:     specialtyNames(raw.Specialities),
		ExperienceYears: extractInt(rawText(raw.Experience)),
		Fee:             extractDecimal(rawText(raw.Fees)),
		ConsultationModes: entity.ConsultationModes{
			VideoConsult: rawTruthy(raw.VideoConsult),
			InClinic:     rawTruthy(raw.InClinic),
		},
		Languages:  rawStrings(raw.Languages),
		Location:   location,
		ClinicName: clinicName,
	}
}

func synthesizeDoctorID(position int, name string) string {
	return "doc-" + uuid.NewSHA1(doctorIDNamespace, []byte(fmt.Sprintf("%d|%s", position, name))).String()
}

// clinicDetails reads clinic.name and joins the non-empty parts of
// clinic.address.locality and clinic.address.city.
func clinicDetails(raw json.RawMessage) (string, string) {
	var clinic dto.RawClinic
	if len(raw) == 0 || json.Unmarshal(raw, &clinic) != nil {
		return "", ""
	}

	var address dto.RawAddress
	if len(clinic.Address) == 0 || json.Unmarshal(clinic.Address, &address) != nil {
		return strings.TrimSpace(rawText(clinic.Name)), ""
	}

	parts := make([]string, 0, 2)
	for _, part := range []json.RawMessage{address.Locality, address.City} {
		if s := strings.TrimSpace(rawText(part)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.TrimSpace(rawText(clinic.Name)), strings.Join(parts, ", ")
}

// specialtyNames accepts both [{"name": "..."}] and ["..."].
func specialtyNames(raw json.RawMessage) []string {
	var elements []json.RawMessage
	names := []string{}
	if len(raw) == 0 || json.Unmarshal(raw, &elements) != nil {
		return names
	}

	for _, element := range elements {
		name := rawText(element)
		if name == "" {
			var named struct {
				Name json.RawMessage `json:"name"`
			}
			if json.Unmarshal(element, &named) == nil {
				name = rawText(named.Name)
			}
		}
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func rawStrings(raw json.RawMessage) []string {
	var elements []json.RawMessage
	out := []string{}
	if len(raw) == 0 || json.Unmarshal(raw, &elements) != nil {
		return out
	}
	for _, element := range elements {
		if s := strings.TrimSpace(rawText(element)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// rawText returns the value of a JSON string, or the literal text of a JSON
// number. Anything else is "".
func rawText(raw json.RawMessage) string {
	switch v := decodeLoose(raw).(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

func rawTruthy(raw json.RawMessage) bool {
	switch v := decodeLoose(raw).(type) {
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	}
	return false
}

func decodeLoose(raw json.RawMessage) any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var v any
	if err := decoder.Decode(&v); err != nil {
		return nil
	}
	return v
}

// extractInt takes the first maximal run of decimal digits, 0 when there is
// none or it overflows.
func extractInt(text string) int {
	run := digitRun.FindString(text)
	if run == "" {
		return 0
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0
	}
	return n
}

func extractDecimal(text string) decimal.Decimal {
	run := digitRun.FindString(text)
	if run == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(run)
	if err != nil {
		return decimal.Zero
	}
	return d
}
