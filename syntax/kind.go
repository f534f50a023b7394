// Package syntax defines the immutable tree produced by the parser: tagged
// node kinds, token/node/list/separated-list children, and the tree
// accessors downstream consumers use (spec.md §3.3, §6.2).
//
// The shape generalizes the teacher's green-tree model in
// runtime/parser/tree.go (Event/EventKind/NodeKind, built by Open/Token/Close
// events over a flat buffer) to the full node taxonomy named in
// original_source/Src/Parsing2/SyntaxKind.h. We keep the event-buffer
// build step (see parser.Builder) but materialize it into a real tree of
// Node values instead of leaving it as a flat event log, because
// downstream consumers (spec.md §6.2) need kind/children/span accessors,
// not an event stream.
package syntax

// Kind tags a syntax node's grammar production.
type Kind uint16

const (
	KindNone Kind = iota

	// Top level.
	KindCompilationUnit
	KindNamespaceDeclaration
	KindFileScopedNamespaceDeclaration
	KindUsingDirective

	// Type declarations and members.
	KindClassDeclaration
	KindStructDeclaration
	KindInterfaceDeclaration
	KindEnumDeclaration
	KindEnumMemberDeclaration
	KindDelegateDeclaration
	KindFieldDeclaration
	KindConstDeclaration
	KindMethodDeclaration
	KindConstructorDeclaration
	KindPropertyDeclaration
	KindIndexerDeclaration
	KindOperatorDeclaration
	KindConversionOperatorDeclaration
	KindAccessorList
	KindGetAccessorDeclaration
	KindSetAccessorDeclaration
	KindInitAccessorDeclaration
	KindArrowExpressionClause
	KindParameterList
	KindParameter
	KindTypeParameterList
	KindTypeParameter
	KindTypeParameterConstraintClause
	KindBaseList
	KindVariableDeclaration
	KindVariableDeclarator
	KindEqualsValueClause

	// Types.
	KindPredefinedType
	KindIdentifierName
	KindQualifiedName
	KindGenericName
	KindTypeArgumentList
	KindArrayType
	KindArrayRankSpecifier
	KindNullableType
	KindTupleType
	KindTupleElement

	// Statements.
	KindBlock
	KindExpressionStatement
	KindLocalDeclarationStatement
	KindLocalFunctionStatement
	KindIfStatement
	KindElseClause
	KindForStatement
	KindForEachStatement
	KindWhileStatement
	KindDoStatement
	KindUsingStatement
	KindTryStatement
	KindCatchClause
	KindCatchDeclaration
	KindFinallyClause
	KindSwitchStatement
	KindSwitchSection
	KindSwitchLabel
	KindCaseSwitchLabel
	KindDefaultSwitchLabel
	KindCasePatternSwitchLabel
	KindReturnStatement
	KindThrowStatement
	KindBreakStatement
	KindContinueStatement
	KindGotoStatement
	KindLabeledStatement
	KindEmptyStatement

	// Expressions.
	KindParenthesizedExpression
	KindTupleExpression
	KindLiteralExpression
	KindIdentifierNameExpression
	KindGenericNameExpression
	KindSimpleMemberAccessExpression
	KindConditionalAccessExpression
	KindInvocationExpression
	KindElementAccessExpression
	KindArgumentList
	KindArgument
	KindObjectCreationExpression
	KindImplicitObjectCreationExpression
	KindArrayCreationExpression
	KindImplicitArrayCreationExpression
	KindStackAllocArrayCreationExpression
	KindObjectInitializerExpression
	KindCollectionInitializerExpression
	KindAnonymousObjectCreationExpression
	KindAnonymousObjectMemberDeclarator
	KindPrefixUnaryExpression
	KindPostfixUnaryExpression
	KindBinaryExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindRangeExpression
	KindIsExpression
	KindAsExpression
	KindIsPatternExpression
	KindCastExpression
	KindTypeOfExpression
	KindSizeOfExpression
	KindDefaultExpression
	KindThrowExpression
	KindSimpleLambdaExpression
	KindParenthesizedLambdaExpression
	KindInterpolatedStringExpression
	KindInterpolatedStringText
	KindInterpolation
	KindSwitchExpression
	KindSwitchExpressionArm
	KindDiscardExpression

	// Patterns.
	KindDeclarationPattern
	KindConstantPattern
	KindVarPattern
	KindDiscardPattern
	KindRecursivePattern
	KindPositionalPatternClause
	KindPropertyPatternClause
	KindSubpattern
	KindListPattern
	KindSlicePattern
	KindRelationalPattern
	KindTypePattern
	KindOrPattern
	KindAndPattern
	KindNotPattern
	KindParenthesizedPattern
	KindWhenClause

	// Leaves.
	KindToken // wraps a single token.Token as a child

	kindCount
)

var kindNames = [...]string{
	KindNone: "None", KindCompilationUnit: "CompilationUnit",
	KindNamespaceDeclaration: "NamespaceDeclaration", KindFileScopedNamespaceDeclaration: "FileScopedNamespaceDeclaration",
	KindUsingDirective: "UsingDirective", KindClassDeclaration: "ClassDeclaration",
	KindStructDeclaration: "StructDeclaration", KindInterfaceDeclaration: "InterfaceDeclaration",
	KindEnumDeclaration: "EnumDeclaration", KindEnumMemberDeclaration: "EnumMemberDeclaration",
	KindDelegateDeclaration: "DelegateDeclaration", KindFieldDeclaration: "FieldDeclaration",
	KindConstDeclaration: "ConstDeclaration", KindMethodDeclaration: "MethodDeclaration",
	KindConstructorDeclaration: "ConstructorDeclaration", KindPropertyDeclaration: "PropertyDeclaration",
	KindIndexerDeclaration: "IndexerDeclaration", KindOperatorDeclaration: "OperatorDeclaration",
	KindConversionOperatorDeclaration: "ConversionOperatorDeclaration", KindAccessorList: "AccessorList",
	KindGetAccessorDeclaration: "GetAccessorDeclaration", KindSetAccessorDeclaration: "SetAccessorDeclaration",
	KindInitAccessorDeclaration: "InitAccessorDeclaration", KindArrowExpressionClause: "ArrowExpressionClause",
	KindParameterList: "ParameterList", KindParameter: "Parameter",
	KindTypeParameterList: "TypeParameterList", KindTypeParameter: "TypeParameter",
	KindTypeParameterConstraintClause: "TypeParameterConstraintClause", KindBaseList: "BaseList",
	KindVariableDeclaration: "VariableDeclaration", KindVariableDeclarator: "VariableDeclarator",
	KindEqualsValueClause: "EqualsValueClause", KindPredefinedType: "PredefinedType",
	KindIdentifierName: "IdentifierName", KindQualifiedName: "QualifiedName",
	KindGenericName: "GenericName", KindTypeArgumentList: "TypeArgumentList",
	KindArrayType: "ArrayType", KindArrayRankSpecifier: "ArrayRankSpecifier",
	KindNullableType: "NullableType", KindTupleType: "TupleType",
	KindTupleElement: "TupleElement", KindBlock: "Block",
	KindExpressionStatement: "ExpressionStatement", KindLocalDeclarationStatement: "LocalDeclarationStatement",
	KindLocalFunctionStatement: "LocalFunctionStatement", KindIfStatement: "IfStatement",
	KindElseClause: "ElseClause", KindForStatement: "ForStatement",
	KindForEachStatement: "ForEachStatement", KindWhileStatement: "WhileStatement",
	KindDoStatement: "DoStatement", KindUsingStatement: "UsingStatement",
	KindTryStatement: "TryStatement", KindCatchClause: "CatchClause",
	KindCatchDeclaration: "CatchDeclaration", KindFinallyClause: "FinallyClause",
	KindSwitchStatement: "SwitchStatement", KindSwitchSection: "SwitchSection",
	KindSwitchLabel: "SwitchLabel", KindCaseSwitchLabel: "CaseSwitchLabel",
	KindDefaultSwitchLabel: "DefaultSwitchLabel", KindCasePatternSwitchLabel: "CasePatternSwitchLabel",
	KindReturnStatement: "ReturnStatement", KindThrowStatement: "ThrowStatement",
	KindBreakStatement: "BreakStatement", KindContinueStatement: "ContinueStatement",
	KindGotoStatement: "GotoStatement", KindLabeledStatement: "LabeledStatement",
	KindEmptyStatement: "EmptyStatement", KindParenthesizedExpression: "ParenthesizedExpression",
	KindTupleExpression: "TupleExpression", KindLiteralExpression: "LiteralExpression",
	KindIdentifierNameExpression: "IdentifierNameExpression", KindGenericNameExpression: "GenericNameExpression",
	KindSimpleMemberAccessExpression: "SimpleMemberAccessExpression",
	KindConditionalAccessExpression: "ConditionalAccessExpression", KindInvocationExpression: "InvocationExpression",
	KindElementAccessExpression: "ElementAccessExpression", KindArgumentList: "ArgumentList",
	KindArgument: "Argument", KindObjectCreationExpression: "ObjectCreationExpression",
	KindImplicitObjectCreationExpression: "ImplicitObjectCreationExpression", KindArrayCreationExpression: "ArrayCreationExpression",
	KindImplicitArrayCreationExpression: "ImplicitArrayCreationExpression", KindStackAllocArrayCreationExpression: "StackAllocArrayCreationExpression",
	KindObjectInitializerExpression: "ObjectInitializerExpression", KindCollectionInitializerExpression: "CollectionInitializerExpression",
	KindAnonymousObjectCreationExpression: "AnonymousObjectCreationExpression", KindAnonymousObjectMemberDeclarator: "AnonymousObjectMemberDeclarator",
	KindPrefixUnaryExpression: "PrefixUnaryExpression", KindPostfixUnaryExpression: "PostfixUnaryExpression",
	KindBinaryExpression: "BinaryExpression", KindAssignmentExpression: "AssignmentExpression",
	KindConditionalExpression: "ConditionalExpression", KindRangeExpression: "RangeExpression",
	KindIsExpression: "IsExpression", KindAsExpression: "AsExpression",
	KindIsPatternExpression: "IsPatternExpression", KindCastExpression: "CastExpression",
	KindTypeOfExpression: "TypeOfExpression", KindSizeOfExpression: "SizeOfExpression",
	KindDefaultExpression: "DefaultExpression", KindThrowExpression: "ThrowExpression",
	KindSimpleLambdaExpression: "SimpleLambdaExpression", KindParenthesizedLambdaExpression: "ParenthesizedLambdaExpression",
	KindInterpolatedStringExpression: "InterpolatedStringExpression", KindInterpolatedStringText: "InterpolatedStringText",
	KindInterpolation: "Interpolation", KindSwitchExpression: "SwitchExpression",
	KindSwitchExpressionArm: "SwitchExpressionArm", KindDiscardExpression: "DiscardExpression",
	KindDeclarationPattern: "DeclarationPattern", KindConstantPattern: "ConstantPattern",
	KindVarPattern: "VarPattern", KindDiscardPattern: "DiscardPattern",
	KindRecursivePattern: "RecursivePattern", KindPositionalPatternClause: "PositionalPatternClause",
	KindPropertyPatternClause: "PropertyPatternClause", KindSubpattern: "Subpattern",
	KindListPattern: "ListPattern", KindSlicePattern: "SlicePattern",
	KindRelationalPattern: "RelationalPattern", KindTypePattern: "TypePattern",
	KindOrPattern: "OrPattern", KindAndPattern: "AndPattern",
	KindNotPattern: "NotPattern", KindParenthesizedPattern: "ParenthesizedPattern",
	KindWhenClause: "WhenClause", KindToken: "Token",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
