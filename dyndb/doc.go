// Package dyndb fornece uma abstração genérica e fortemente tipada sobre o
// AWS DynamoDB Go SDK (v2).
//
// Visão Geral:
// O pacote `dyndb` oferece a interface `Store[T]`, que simplifica as operações
// de leitura e escrita por chave primária, eliminando a necessidade de lidar
// diretamente com os tipos de baixo nível do SDK do DynamoDB (AttributeValue, etc.).
//
// Funcionalidades Principais:
// - CRUD Tipado: Operações `Get` e `Put` usando tipos Go nativos.
// - Escrita Condicional: `PutIfAbsent` delega a unicidade da chave ao próprio
//   DynamoDB via `attribute_not_exists`, retornando `ErrConditionFailed`
//   quando o item já existe.
// - Mocks Integrados: `MockStore` e `MockClient` para testes unitários fáceis.
//
// Exemplo de Uso:
//
//	type User struct {
//		TenantID string `dynamodbav:"tenant_id"`
//		Email    string `dynamodbav:"email"`
//	}
//
//	cfg := dyndb.TableConfig{TableName: "users", HashKey: "tenant_id", SortKey: "email"}
//	store := dyndb.New[User](client, cfg)
//
//	if err := store.PutIfAbsent(ctx, User{TenantID: "t1", Email: "a@b.com"}); err != nil {
//		if errors.Is(err, dyndb.ErrConditionFailed) { /* já existe */ }
//	}
//
//	user, err := store.Get(ctx, "t1", "a@b.com")
//	if errors.Is(err, dyndb.ErrNotFound) { /* ... */ }
package dyndb
