package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nacc-tools/disclosure-etl/constants"
)

// Prompts are Thai-first: the documents are Thai government filings and the
// field cues (โฉนด, คู่สมรส, บุตร) only exist in Thai.

// systemPrompt is the extraction contract plus the enum ID tables the model
// must emit. Built once; map iteration is sorted so the text is stable.
var systemPrompt = basePrompt + enumReference()

const basePrompt = `คุณเป็นผู้ช่วยสกัดข้อมูลจากบัญชีแสดงรายการทรัพย์สินและหนี้สินของเจ้าหน้าที่รัฐ
อ่านข้อความ OCR ที่ให้มา แล้วตอบกลับเป็น JSON เท่านั้น ห้ามมีข้อความอื่นนอกเหนือจาก JSON

โครงสร้างที่ต้องการ:
- submitter_info: ข้อมูลผู้ยื่น (title, first_name, last_name, age, marital_status, ที่อยู่, positions, old_names)
- spouse_info: ข้อมูลคู่สมรส (โครงสร้างเดียวกับผู้ยื่น) ใส่เฉพาะเมื่อปรากฏในเอกสาร
- relatives: บิดา มารดา บุตร และญาติ (relationship_id, ชื่อ, อายุ, is_death)
- statements: รายการทรัพย์สิน/หนี้สินรวม (statement_type_id, valuation_submitter, valuation_spouse, valuation_child)
- statement_details: รายการย่อยของแต่ละประเภท
- assets: ทรัพย์สินรายชิ้น (asset_type_id, asset_name, valuation, เจ้าของ)

กติกา:
- ตัวเลขเงินเป็น number ไม่ใส่เครื่องหมายคั่นหลักพัน
- ข้อมูลที่ไม่ปรากฏในเอกสาร ให้ละเว้น field นั้น ห้ามเดา
- ถ้าบุคคลมีคำว่า "ถึงแก่กรรม" หรือ "เสียชีวิต" ให้ is_death เป็น true`

func enumReference() string {
	var b strings.Builder

	b.WriteString("\n\nตารางรหัส:\nstatement_type_id:\n")
	for _, id := range sortedIDs(constants.StatementTypeName) {
		fmt.Fprintf(&b, "  %d = %s\n", id, constants.StatementTypeName[id])
	}

	b.WriteString("relationship_id:\n")
	for _, id := range sortedIDs(constants.RelationshipName) {
		fmt.Fprintf(&b, "  %d = %s\n", id, constants.RelationshipName[id])
	}

	b.WriteString("asset_type_id ตามคำในเอกสาร:\n")
	words := make([]string, 0, len(constants.AssetKeywordType))
	for w := range constants.AssetKeywordType {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		fmt.Fprintf(&b, "  %s = %d\n", w, constants.AssetKeywordType[w])
	}

	return b.String()
}

func sortedIDs(m map[int]string) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// maxOCRChars caps the OCR text placed in a prompt. Scans of very long
// filings can exceed the model's context; the tail past the cap is cut.
const maxOCRChars = 100_000

// BuildPagePrompt renders the user message for one page.
func BuildPagePrompt(req PageRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "เอกสาร %s หน้า %d", req.DocID, req.PageNumber)
	if req.PageType != "" {
		fmt.Fprintf(&b, " (ประเภทหน้า: %s)", req.PageType)
	}
	b.WriteString("\nสกัดเฉพาะข้อมูลที่ปรากฏในหน้านี้\n\nข้อความ OCR:\n")
	b.WriteString(clipOCR(req.OCRText))
	return b.String()
}

// BuildDocumentPrompt renders the user message for combined mode: the whole
// document in one request.
func BuildDocumentPrompt(req DocumentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "เอกสาร %s ทั้งฉบับ\nสกัดข้อมูลทุกส่วนจากข้อความทั้งหมด\n\nข้อความ OCR:\n", req.DocID)
	b.WriteString(clipOCR(req.OCRText))
	return b.String()
}

func clipOCR(s string) string {
	if len(s) <= maxOCRChars {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxOCRChars {
		return s
	}
	return string(runes[:maxOCRChars])
}
