package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nacc-tools/disclosure-etl/constants"
)

func TestSystemPromptCarriesEnumTables(t *testing.T) {
	assert.Contains(t, systemPrompt, "statement_type_id:")
	assert.Contains(t, systemPrompt,
		fmt.Sprintf("%d = %s", constants.StatementDeposit, constants.StatementTypeName[constants.StatementDeposit]))

	assert.Contains(t, systemPrompt, "relationship_id:")
	assert.Contains(t, systemPrompt,
		fmt.Sprintf("%d = %s", constants.RelFather, constants.RelationshipName[constants.RelFather]))

	assert.Contains(t, systemPrompt,
		fmt.Sprintf("รถยนต์ = %d", constants.AssetKeywordType["รถยนต์"]))
}

func TestBuildPagePromptIncludesPageContext(t *testing.T) {
	got := BuildPagePrompt(PageRequest{DocID: "D1", PageNumber: 4, PageType: "assets", OCRText: "ทรัพย์สิน"})
	assert.Contains(t, got, "D1")
	assert.Contains(t, got, "หน้า 4")
	assert.Contains(t, got, "assets")
	assert.Contains(t, got, "ทรัพย์สิน")
}

func TestClipOCRCapsLongText(t *testing.T) {
	long := strings.Repeat("ก", maxOCRChars+500)
	clipped := clipOCR(long)
	assert.Equal(t, maxOCRChars, len([]rune(clipped)))

	short := "สั้น"
	assert.Equal(t, short, clipOCR(short))
}
