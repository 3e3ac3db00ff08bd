package liquid

import (
	"strings"
)

const richTextDoc = `/**
 * Needs to be used in {@link HTMLAttributes<HTMLElement>['dangerouslySetInnerHTML']}
 * instead of in the ` + "`children`" + ` prop
 */`

const baseTypes = `export interface ShopifySection {
	id: string
	name: string
	tag: string
	/** Usually {{ page_title }} */
	title: string
	settings: Settings
	blocks: Block[]
}

// eslint-disable-next-line @typescript-eslint/no-empty-interface
export interface Settings {}

export interface Block {
	id: string
	type: string
	settings: BlockSettings
	/** Used by Shopify's Theme Editor */
	attributes?: string
}

// eslint-disable-next-line @typescript-eslint/no-empty-interface
export interface BlockSettings {}`

// renderDocument lays out the module: imports, shared base types, the sections
// union, then section and block declarations.
func renderDocument(sectionNames, sectionDecls, blockDecls []string) string {
	parts := []string{
		"import type { HTMLAttributes } from 'react'",
		richTextDoc + "\nexport type " + TypeRichText +
			" = NonNullable<HTMLAttributes<HTMLElement>['dangerouslySetInnerHTML']>['__html']",
		sectionsUnion(sectionNames),
		baseTypes,
	}
	if len(sectionDecls) > 0 {
		parts = append(parts, strings.Join(sectionDecls, "\n\n"))
	}
	if len(blockDecls) > 0 {
		parts = append(parts, strings.Join(blockDecls, "\n\n"))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// sectionsUnion lists every section interface; with no sections it is the empty
// union.
func sectionsUnion(names []string) string {
	if len(names) == 0 {
		return "export type " + SectionsUnionTypeName + " = Array<never>"
	}
	return "export type " + SectionsUnionTypeName + " = Array<\n\t" + strings.Join(names, "\n\t| ") + "\n>"
}
