package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with contractgen",
		Content: topicQuickstart,
	},
	{
		Name:    "contract",
		Title:   "Contract Document",
		Summary: "The ALL.contract file: fields, value types, and quoting",
		Content: topicContract,
	},
	{
		Name:    "numbering",
		Title:   "Contract Numbers",
		Summary: "ContractNumber, ContractFormat tokens, and fallbacks",
		Content: topicNumbering,
	},
	{
		Name:    "placeholders",
		Title:   "Template Placeholders",
		Summary: "[Token] naming conventions and how each kind is filled",
		Content: topicPlaceholders,
	},
	{
		Name:    "output",
		Title:   "Output Layout",
		Summary: "Where generated files go and what manifest.json records",
		Content: topicOutput,
	},
}

const topicQuickstart = `Quick Start
===========

1. Create a sample contract document and template:

    contractgen init

   This writes ALL.contract and templates/contract.txt in the current
   directory. Existing files are left alone.

2. Check which contract number the document produces:

    contractgen number

   This prints "Contract Number: RC-2024-03-05" (or whatever your data
   yields). Pass a path to read a different document.

3. See how every placeholder in a template would be filled:

    contractgen resolve --template templates/contract.txt

4. Generate the contract:

    contractgen generate --template templates/contract.txt

   Output lands in templates/Contract/<number>/. Add --dry-run to see the
   plan without writing anything, or --out DIR to write elsewhere.

5. Keep a terminal open while editing the document:

    contractgen watch

   The contract number is printed again each time ALL.contract is saved.
`

const topicContract = `Contract Document
=================

The contract document (default: ./ALL.contract) is a flat YAML mapping of
field names to values:

    ComName: «Smart Teams» LLC
    MyName: OOO SMART TEAMS
    ContractFormat: {Prefix}-{CName}-{Year}/{Month}/{Day}
    Day: 5
    Month: 3
    Year: 2024
    Area: 45
    Amount: 1500
    ClientPhone: 998901112233

VALUES
  Strings and numbers are kept as written. Booleans become "true" or
  "false". Lists are joined with commas. Null values and nested mappings
  are ignored.

QUOTING
  ContractFormat and ContractNumber usually contain characters YAML treats
  specially ({, }, :). Before parsing, contractgen wraps the values of
  those two keys in double quotes unless they are already quoted. Only
  lines that start with the key are touched; everything else is parsed
  exactly as written.

ENVIRONMENT
  ContractPrefix and ContractFormat may also come from the environment or
  from a .env file next to where contractgen runs (--env-file to change
  it). Values in the document always win.
`

const topicNumbering = `Contract Numbers
================

A run uses exactly one contract number:

  1. ContractNumber from the document, when set and not blank.
  2. Otherwise ContractFormat with its tokens filled in.

Whitespace is removed from the result before it is used in folder and
file names.

FORMAT TOKENS
  {ContractPrefix}, {Prefix}  ContractPrefix, or --prefix / $ContractPrefix,
                              or "RC"
  {ComName}, {CName}          initials of ComName: «Smart Teams» LLC → STL
  {Day}, {Month}              zero-padded to two digits; "00" when missing
  {Year}                      as written; empty when missing

Any other {Name} is left in the number unchanged.

FALLBACKS
  When the document has no ContractFormat, --format / $ContractFormat is
  used, then "RC-{Year}-{Month}-{Day}". A value of 0 or an empty string
  counts as missing.
`

const topicPlaceholders = `Template Placeholders
=====================

Templates mark fields as [Token]: letters, digits and underscores inside
square brackets. Each distinct token is resolved once, by the first rule
that matches its name:

  [ContractNum]   the contract number for this run
  [MonthText]     Month as a month name in the genitive (3 → марта)
  [<Field>Text]   Field spelled out in Russian words (Amount → AmountText)
  [<Name>Phone]   the phone number, with "+" added before a leading 998
  [<Field>]       the field as written in the document

Anything that cannot be resolved becomes an empty string; generation never
fails because of missing data. Run "contractgen resolve" to see the table
before generating.

DOCX TEMPLATES
  Word often splits a placeholder across several runs (spell-check marks,
  editing history). Runs with the same formatting are joined before
  replacing, so these still work. A placeholder whose parts are formatted
  differently (for example only half of it bold) is reported as "not
  replaced"; retype it with one formatting to fix it.
`

const topicOutput = `Output Layout
=============

Files are written under the template's folder unless --out is given:

    <base>/Contract/<number>/<number>, <area>-kv, <party>, <template>.<ext>

  <area>   the Area field (empty when missing)
  <party>  LLC when MyName contains SMART TEAMS (--party-marker), else Person

FORMATS
  Each run saves the editable format (same type as the template) and, when
  LibreOffice (soffice) is on PATH, a PDF rendering. Without a converter
  the PDF is skipped and the run still succeeds.

MANIFEST
  manifest.json in the same folder records the run id, timings, every
  placeholder with its value and replacement count, and the files written.
  "contractgen status" prints it.

Existing folders are reused and files with the same name are replaced.
`
