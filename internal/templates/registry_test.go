package templates

import (
	"strings"
	"testing"

	"structgen/internal/classify"
)

func TestResolveKey(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name string
		path string
		want Key
	}{
		{
			name: "frontend base service",
			path: "frontend/app/src/services/BaseService.ts",
			want: KeyFrontendBaseService,
		},
		{
			name: "backend base service",
			path: "backend/app/src/services/base/BaseService.ts",
			want: KeyBackendBaseService,
		},
		{
			name: "frontend service",
			path: "frontend/app/src/services/ApiService.ts",
			want: KeyFrontendService,
		},
		{
			name: "backend service",
			path: "backend/app/src/services/UserService.ts",
			want: KeyBackendService,
		},
		{
			name: "service without project context treated as backend",
			path: "src/services/QueueService.ts",
			want: KeyBackendService,
		},
		{
			name: "base controller",
			path: "backend/app/src/controllers/base/BaseController.ts",
			want: KeyBaseController,
		},
		{
			name: "frontend unit test",
			path: "frontend/app/src/tests/unit/components/auth/Login.test.tsx",
			want: KeyReactTest,
		},
		{
			name: "backend unit test",
			path: "backend/app/tests/unit/services/AuthService.test.ts",
			want: KeyBackendTest,
		},
		{
			name: "integration test",
			path: "backend/app/tests/integration/user-flow.integration.test.ts",
			want: KeyIntegrationTest,
		},
		{
			name: "e2e test",
			path: "frontend/app/src/tests/e2e/login.e2e.test.tsx",
			want: KeyE2ETest,
		},
		{
			name: "performance test",
			path: "backend/app/tests/performance/load.test.ts",
			want: KeyPerformanceTest,
		},
		{
			name: "package manifest",
			path: "frontend/app/package.json",
			want: KeyPackageJSON,
		},
		{
			name: "tsconfig",
			path: "backend/app/tsconfig.json",
			want: KeyTSConfig,
		},
		{
			name: "tsconfig node",
			path: "frontend/app/tsconfig.node.json",
			want: KeyTSConfigNode,
		},
		{
			name: "generic index",
			path: "backend/app/src/index.ts",
			want: KeyIndex,
		},
		{
			name: "generic types",
			path: "frontend/app/src/types/deviceTypes.ts",
			want: KeyTypes,
		},
		{
			name: "generic constants",
			path: "frontend/app/src/constants.ts",
			want: KeyConstants,
		},
		{
			name: "generic config name",
			path: "backend/app/src/appConfig.ts",
			want: KeyConstants,
		},
		{
			name: "generic utils",
			path: "frontend/app/src/utils.ts",
			want: KeyUtility,
		},
		{
			name: "plain generic",
			path: "backend/app/src/server.ts",
			want: KeyGeneric,
		},
		{
			name: "component",
			path: "frontend/app/src/components/auth/Login.tsx",
			want: KeyReactComponent,
		},
		{
			name: "hook",
			path: "frontend/app/src/hooks/useAuth.ts",
			want: KeyReactHook,
		},
		{
			name: "migration",
			path: "backend/app/src/database/001_create_users.sql",
			want: KeyMigration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := classify.Classify(tt.path)
			if got := reg.ResolveKey(tt.path, ft); got != tt.want {
				t.Errorf("ResolveKey(%q, %v) = %v, want %v", tt.path, ft, got, tt.want)
			}
		})
	}
}

func TestRender_ControllerDeclaresDerivedName(t *testing.T) {
	reg := NewRegistry()
	content := reg.Render(KeyController, "backend/app/src/controllers/UserController.ts")

	if !strings.Contains(content, "export class UserController extends BaseController") {
		t.Errorf("controller content missing declaration, got:\n%s", content)
	}
}

func TestRender_UnderscoreNamesBecomePascalCase(t *testing.T) {
	reg := NewRegistry()
	content := reg.Render(KeyModel, "backend/app/src/models/device_token.ts")

	if !strings.Contains(content, "export class DeviceToken") {
		t.Errorf("expected DeviceToken declaration, got:\n%s", content)
	}
}

func TestRender_ReactTestImportsComponent(t *testing.T) {
	reg := NewRegistry()
	content := reg.Render(KeyReactTest, "frontend/app/src/tests/unit/components/auth/Login.test.tsx")

	want := "import { Login } from '../../../components/auth/Login'"
	if !strings.Contains(content, want) {
		t.Errorf("react test missing import %q, got:\n%s", want, content)
	}
}

func TestRender_BackendTestImportsSubject(t *testing.T) {
	reg := NewRegistry()
	content := reg.Render(KeyBackendTest, "backend/app/tests/unit/services/AuthService.test.ts")

	want := "import { AuthService } from '../../src/services/AuthService'"
	if !strings.Contains(content, want) {
		t.Errorf("backend test missing import %q, got:\n%s", want, content)
	}
}

func TestRender_PackageJSONByProject(t *testing.T) {
	reg := NewRegistry()

	fe := reg.Render(KeyPackageJSON, "frontend/app/package.json")
	if !strings.Contains(fe, `"vite"`) {
		t.Errorf("frontend package.json should reference vite, got:\n%s", fe)
	}

	be := reg.Render(KeyPackageJSON, "backend/app/package.json")
	if !strings.Contains(be, `"express"`) {
		t.Errorf("backend package.json should reference express, got:\n%s", be)
	}
}

func TestRender_Deterministic(t *testing.T) {
	reg := NewRegistry()
	paths := map[Key]string{
		KeyReactComponent: "frontend/app/src/components/Dashboard.tsx",
		KeyBackendService: "backend/app/src/services/UserService.ts",
		KeyMigration:      "backend/app/src/database/001_init.sql",
		KeyGeneric:        "backend/app/src/server.ts",
	}

	for key, p := range paths {
		first := reg.Render(key, p)
		second := reg.Render(key, p)
		if first != second {
			t.Errorf("Render(%v, %q) is not deterministic", key, p)
		}
		if first == "" {
			t.Errorf("Render(%v, %q) returned empty content", key, p)
		}
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"UserController", "UserController"},
		{"user_controller", "UserController"},
		{"device_token", "DeviceToken"},
		{"Login.test", "Login"},
		{"AuthService.spec", "AuthService"},
		{"useAuth", "UseAuth"},
	}

	for _, tt := range tests {
		if got := ClassName(tt.in); got != tt.want {
			t.Errorf("ClassName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
