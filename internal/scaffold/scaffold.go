package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/contractgen/internal/ux"
)

// ContractFile and TemplateFile are the paths Init writes, relative to the
// target directory.
const (
	ContractFile = "ALL.contract"
	TemplateFile = "templates/contract.txt"
)

var contractTemplate = `# Contract data. Every field can be used in a template as [FieldName].
ComName: «Smart Teams» LLC
MyName: OOO SMART TEAMS
ClientName: Ivanov Ivan
ClientPhone: 998901112233
ContractPrefix: RC
ContractFormat: {Prefix}-{CName}-{Year}-{Month}-{Day}
Day: 5
Month: 3
Year: 2024
Area: 45
Amount: 1500
`

var templateText = `ДОГОВОР № [ContractNum]

г. Ташкент                                   «[Day]» [MonthText] [Year] г.

[ComName], именуемое в дальнейшем «Исполнитель», и [ClientName],
именуемый в дальнейшем «Заказчик», заключили настоящий договор.

1. Площадь помещения: [Area] кв. м.
2. Стоимость услуг: [Amount] ([AmountText]) сум.

Телефон Заказчика: [ClientPhone]
`

// Init writes a sample contract document and template into targetDir.
func Init(targetDir string) error {
	contractPath := filepath.Join(targetDir, ContractFile)
	if _, err := os.Stat(contractPath); err == nil {
		return fmt.Errorf("%s already exists in %s", ContractFile, targetDir)
	}
	templatePath := filepath.Join(targetDir, filepath.FromSlash(TemplateFile))
	if _, err := os.Stat(templatePath); err == nil {
		return fmt.Errorf("%s already exists in %s", TemplateFile, targetDir)
	}

	if err := os.MkdirAll(filepath.Dir(templatePath), 0755); err != nil {
		return fmt.Errorf("creating templates dir: %w", err)
	}
	if err := os.WriteFile(contractPath, []byte(contractTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", ContractFile, err)
	}
	if err := os.WriteFile(templatePath, []byte(templateText), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", TemplateFile, err)
	}

	out := ux.Out
	fmt.Fprintf(out, "\n%s%s✓ Initialized contract workspace%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Fprintf(out, "  Created:\n")
	fmt.Fprintf(out, "    %s%s%s           — contract data\n", ux.Cyan, ContractFile, ux.Reset)
	fmt.Fprintf(out, "    %s%s%s — sample template\n\n", ux.Cyan, TemplateFile, ux.Reset)
	fmt.Fprintf(out, "  Next steps:\n")
	fmt.Fprintf(out, "    1. Edit %s%s%s with the contract's details\n", ux.Cyan, ContractFile, ux.Reset)
	fmt.Fprintf(out, "    2. Run %scontractgen resolve --template %s%s to check placeholders\n", ux.Cyan, TemplateFile, ux.Reset)
	fmt.Fprintf(out, "    3. Run %scontractgen generate --template %s%s\n\n", ux.Cyan, TemplateFile, ux.Reset)

	return nil
}
