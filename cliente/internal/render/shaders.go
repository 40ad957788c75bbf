package render

// Nomes dos uniforms do programa de blocos.
const (
	UniformModelView  = "uModelView"
	UniformProjection = "uProjection"
	UniformScale      = "uScale"
)

// blockVertexShader escala o bloco em torno do próprio centro, antes da model-view.
const blockVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;

uniform mat4 uModelView;
uniform mat4 uProjection;
uniform float uScale;

out vec2 fragTexCoord;

void main()
{
    fragTexCoord = vertexTexCoord;
    gl_Position = uProjection * uModelView * vec4(vertexPosition * uScale, 1.0);
}
`

const blockFragmentShader = `
#version 330

in vec2 fragTexCoord;

uniform sampler2D texture0;

out vec4 finalColor;

void main()
{
    finalColor = texture(texture0, fragTexCoord);
}
`
