package help

const ColdstartYAML = `# lumdoc Quick Start

inputs:
  baseline: "commands.json (JSON array of {name, description, usage, category?})"
  docs_dir: "docs/docs/lsf-script/en (one <name>.md page per command)"

outputs:
  artifact: "data/commands-enhanced.json (one merged record per baseline entry)"
  manifest: "stdout, --format json|yaml"
  history: "lumdoc.db next to the binary (disable with --no-db)"

commands:
  generate: |
    lumdoc generate
    lumdoc generate --baseline commands.json --docs docs/docs/lsf-script/en --output data/commands-enhanced.json

  with_config: |
    lumdoc generate --config lumdoc.yaml

  cached_rebuild: |
    lumdoc generate --cache-dir .lumdoc-cache

  hover: |
    lumdoc hover abs

  complete: |
    lumdoc complete ad
    lumdoc complete --line "x = ad" ad

  list_runs: |
    lumdoc db runs --limit 5

  run_details: |
    lumdoc db run 3
    lumdoc db run --source fallback
    lumdoc db run --missing-example

  command_history: |
    lumdoc db history abs

config_file: |
  baseline: commands.json
  docs_dir: docs/docs/lsf-script/en
  output: data/commands-enhanced.json
  doc_extension: .md
  placeholder_prefix: Lumerical command
  example_label: "**Example**"
  related_markers: ["**See Also**", "### See Also", "## See Also", "**See Also", "See Also"]
  summary_max_len: 100

merge_rules:
  - "Every baseline entry yields exactly one record, in baseline order"
  - "A page named <name>.md enhances the baseline entry <name>"
  - "Page description replaces the baseline one unless empty or '<prefix>: <name>'"
  - "Commands without a page get a synthesized markdown body and one syntax row from usage"
  - "Unknown baseline keys pass through to the artifact"

page_layout:
  - "# title"
  - "description paragraph"
  - "| Syntax | Description | table"
  - "**Example** followed by a fenced code block"
  - "optional **See Also** section (cut from the body)"

exit_codes:
  0: "success"
  1: "usage error"
  2: "setup failure (baseline, docs dir, output write); nothing is written"
`
